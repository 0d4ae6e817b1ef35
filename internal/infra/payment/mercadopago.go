package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrNotConfigured = errors.New("payment gateway not configured")

type CheckoutRequest struct {
	Reference  string
	Title      string
	PriceCents int64
	PayerEmail string
}

type Checkout struct {
	PreferenceID string `json:"preference_id"`
	URL          string `json:"url"`
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
}

// New returns a Mercado Pago gateway, or a disabled one when no access token
// is configured.
func New(accessToken string) (Gateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		return Disabled{}, nil
	}
	return NewMercadoPago(accessToken)
}

// ===============================
// Mercado Pago
// ===============================

type MercadoPago struct {
	client preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := config.New(strings.TrimSpace(accessToken))
	if err != nil {
		return nil, err
	}
	return &MercadoPago{client: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	pref, err := m.client.Create(ctx, buildPreference(req))
	if err != nil {
		return nil, err
	}

	return &Checkout{
		PreferenceID: pref.ID,
		URL:          pref.InitPoint,
	}, nil
}

func buildPreference(req CheckoutRequest) preference.Request {
	r := preference.Request{
		ExternalReference: req.Reference,
		Items: []preference.ItemRequest{
			{
				ID:         req.Reference,
				Title:      req.Title,
				Quantity:   1,
				CurrencyID: "BRL",
				UnitPrice:  float64(req.PriceCents) / 100,
			},
		},
	}
	if req.PayerEmail != "" {
		r.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}
	return r
}

// ===============================
// Disabled
// ===============================

type Disabled struct{}

func (Disabled) CreateCheckout(context.Context, CheckoutRequest) (*Checkout, error) {
	return nil, ErrNotConfigured
}
