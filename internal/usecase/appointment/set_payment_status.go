package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type SetPaymentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetPaymentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetPaymentStatus {
	return &SetPaymentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetPaymentStatus) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	ps, err := domain.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, readErr(err)
	}

	domain.SetPaymentStatus(ap, ps)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, domain.WriteFailed(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.idPtr(),
		Action:   "payment_status_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"payment_status": string(ps)},
	})

	return ap, nil
}
