package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

type NotifyClient struct {
	repo     domain.Repository
	notifier *Notifier
	audit    *audit.Dispatcher
}

func NewNotifyClient(
	repo domain.Repository,
	notifier *Notifier,
	audit *audit.Dispatcher,
) *NotifyClient {
	return &NotifyClient{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *NotifyClient) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
	kind string,
) error {

	if kind == "" {
		kind = KindConfirmation
	}
	if !validKind(kind) {
		return domain.ErrInvalidNotificationKind
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return readErr(err)
	}

	if err := uc.notifier.Notify(ctx, ap, kind); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.idPtr(),
		Action:   "client_notified",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"kind": kind},
	})

	return nil
}
