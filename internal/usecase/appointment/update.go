package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// UpdateAppointmentInput carries a partial edit; nil fields are kept.
type UpdateAppointmentInput struct {
	Actor Actor
	ID    uint

	Date *string
	Time *string

	ClientName    *string
	ClientEmail   *string
	ClientPhone   *string
	PaymentStatus *string
	Notes         *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute applies the edit. The frozen price is never recomputed.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, readErr(err)
	}

	if err := domain.Rename(ap, in.ClientName, in.ClientEmail); err != nil {
		return nil, err
	}
	if in.ClientPhone != nil {
		ap.ClientPhone = strings.TrimSpace(*in.ClientPhone)
	}
	if in.Notes != nil {
		ap.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.PaymentStatus != nil {
		status, err := domain.ParsePaymentStatus(*in.PaymentStatus)
		if err != nil {
			return nil, err
		}
		domain.SetPaymentStatus(ap, status)
	}

	if in.Date != nil || in.Time != nil {
		at, err := uc.reschedule(ctx, ap, in.Date, in.Time)
		if err != nil {
			return nil, err
		}
		ap.ScheduledAt = at
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			metrics.RecordSlotConflict()
			return nil, err
		}
		return nil, domain.WriteFailed(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Actor.idPtr(),
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// reschedule validates the new start against the catalog and every other
// appointment; a missing date or time keeps the current one.
func (uc *UpdateAppointment) reschedule(
	ctx context.Context,
	ap *models.Appointment,
	date *string,
	hm *string,
) (time.Time, error) {

	current := ap.ScheduledAt.In(uc.loc)

	d := current.Format("2006-01-02")
	if date != nil {
		d = strings.TrimSpace(*date)
	}
	t := domain.SlotOf(current, uc.loc)
	if hm != nil {
		t = strings.TrimSpace(*hm)
	}

	if !domain.IsCatalogSlot(t) {
		return time.Time{}, domain.ErrInvalidSlotSelection
	}

	at, err := timezone.ParseDateTime(d, t, uc.loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateOrTime
	}

	existing, err := uc.repo.ListScheduledTimes(ctx)
	if err != nil {
		return time.Time{}, domain.Unreadable(err)
	}

	if err := domain.CheckConflict(at, existing, ap.ID); err != nil {
		metrics.RecordSlotConflict()
		return time.Time{}, err
	}

	return at, nil
}

// readErr keeps not-found as is and classifies anything else as a storage
// read failure.
func readErr(err error) error {
	if errors.Is(err, domain.ErrAppointmentNotFound) {
		return err
	}
	return domain.Unreadable(err)
}
