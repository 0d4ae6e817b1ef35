package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/infra/payment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/infra/whatsapp"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/telemetry"
)

const serviceName = "barber-booking"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OTELEnabled,
		ServiceName:  serviceName,
		OTLPEndpoint: cfg.OTELEndpoint,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up tracing")
	}

	db := dbpkg.NewDB(cfg)

	// ======================================================
	// Integrations
	// ======================================================
	auditDispatcher := audit.NewDispatcher(audit.New(db))

	payments, err := payment.New(cfg.MercadoPagoToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure mercado pago")
	}

	rdb, err := middleware.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REDIS_URL")
	}

	sender := whatsapp.New(cfg.WhatsAppURL, cfg.WhatsAppToken)
	log.Info().Str("provider", sender.ProviderID()).Msg("whatsapp sender ready")

	r, err := routes.NewEngine(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid TRUSTED_PROXIES")
	}

	routes.RegisterRoutes(r, db, cfg, routes.Integrations{
		Audit:    auditDispatcher,
		Sender:   sender,
		Payments: payments,
		Store: storage.New(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.AWSAccessKeyID,
			SecretKey: cfg.AWSSecretKey,
		}),
		Redis: rdb,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(r, serviceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	auditDispatcher.Close()
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
