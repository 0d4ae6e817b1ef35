package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrNotConfigured = errors.New("object storage not configured")

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Bucket() string
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// New returns an S3 store, or a disabled one when no bucket is configured.
func New(cfg S3Config) ObjectStore {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return Disabled{}
	}
	return NewS3Store(cfg)
}

// ===============================
// S3
// ===============================

type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(cfg S3Config) *S3Store {
	awsCfg := aws.Config{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// MinIO and other S3-compatible endpoints
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: cfg.Bucket}
}

func (s *S3Store) Bucket() string {
	return s.bucket
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}

// ===============================
// Disabled
// ===============================

type Disabled struct{}

func (Disabled) Bucket() string { return "" }

func (Disabled) Put(context.Context, string, string, []byte) error {
	return ErrNotConfigured
}
