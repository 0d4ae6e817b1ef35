package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/payment"
)

type CreatePaymentLink struct {
	repo    domain.Repository
	gateway payment.Gateway
	audit   *audit.Dispatcher
}

func NewCreatePaymentLink(
	repo domain.Repository,
	gateway payment.Gateway,
	audit *audit.Dispatcher,
) *CreatePaymentLink {
	return &CreatePaymentLink{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
	}
}

// Execute opens a checkout for the appointment's frozen price. The payment
// status is left untouched.
func (uc *CreatePaymentLink) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) (*payment.Checkout, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, readErr(err)
	}

	checkout, err := uc.gateway.CreateCheckout(ctx, payment.CheckoutRequest{
		Reference:  fmt.Sprintf("appointment-%d", ap.ID),
		Title:      domain.ServiceName(ap.ServiceType),
		PriceCents: ap.PriceCents,
		PayerEmail: ap.ClientEmail,
	})
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			return nil, domain.ErrIntegrationUnavailable
		}
		return nil, domain.IntegrationFailed(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.idPtr(),
		Action:   "payment_link_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"preference_id": checkout.PreferenceID},
	})

	return checkout, nil
}
