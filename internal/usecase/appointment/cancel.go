package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes the appointment. Clients may only delete their own.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return readErr(err)
	}

	if !actor.IsAdmin() && !domain.OwnedBy(ap, actor.Email) {
		return domain.ErrForbidden
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return err
		}
		return domain.WriteFailed(err)
	}

	metrics.RecordCancellation()

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.idPtr(),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"client_name": ap.ClientName},
	})

	return nil
}
