package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/whatsapp"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	KindConfirmation = "confirmation"
	KindReminder     = "reminder"
)

func validKind(kind string) bool {
	return kind == KindConfirmation || kind == KindReminder
}

// Notifier sends WhatsApp messages about an appointment and keeps the
// notification log.
type Notifier struct {
	sender whatsapp.Sender
	logs   domain.NotificationRepository
	loc    *time.Location
	now    clock
}

func NewNotifier(
	sender whatsapp.Sender,
	logs domain.NotificationRepository,
	loc *time.Location,
) *Notifier {
	return &Notifier{
		sender: sender,
		logs:   logs,
		loc:    loc,
		now:    time.Now,
	}
}

func (n *Notifier) Notify(
	ctx context.Context,
	ap *models.Appointment,
	kind string,
) error {

	if ap.ClientPhone == "" {
		return domain.ErrMissingPhone
	}

	if err := n.sender.Send(ctx, ap.ClientPhone, n.message(ap, kind)); err != nil {
		metrics.RecordNotification(kind, "failed")
		return domain.IntegrationFailed(err)
	}
	metrics.RecordNotification(kind, "sent")

	err := n.logs.RecordNotification(ctx, &models.NotificationLog{
		ID:            uuid.NewString(),
		AppointmentID: ap.ID,
		Kind:          kind,
		Recipient:     whatsapp.NormalizePhone(ap.ClientPhone),
		Provider:      n.sender.ProviderID(),
		SentAt:        n.now(),
	})
	// A repeated confirmation is already logged.
	if err != nil && !httperr.IsUniqueConflict(err) {
		log.Error().Err(err).Uint("appointment_id", ap.ID).Msg("notification log write failed")
	}

	return nil
}

func (n *Notifier) message(ap *models.Appointment, kind string) string {
	at := ap.ScheduledAt.In(n.loc)
	service := domain.ServiceName(ap.ServiceType)

	if kind == KindReminder {
		return fmt.Sprintf(
			"Olá, %s! Lembrete: seu horário de %s é amanhã, %s às %s.",
			ap.ClientName, service, at.Format("02/01"), at.Format("15:04"),
		)
	}

	return fmt.Sprintf(
		"Olá, %s! Seu agendamento de %s está confirmado para %s às %s. Valor: %s.",
		ap.ClientName, service, at.Format("02/01/2006"), at.Format("15:04"),
		domain.FormatBRL(ap.PriceCents),
	)
}
