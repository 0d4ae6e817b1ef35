package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ReminderResult struct {
	Date    string `json:"date"`
	Sent    int    `json:"sent"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}

type SendReminders struct {
	repo     domain.Repository
	logs     domain.NotificationRepository
	notifier *Notifier
	loc      *time.Location
	now      clock
}

func NewSendReminders(
	repo domain.Repository,
	logs domain.NotificationRepository,
	notifier *Notifier,
	loc *time.Location,
) *SendReminders {
	return &SendReminders{
		repo:     repo,
		logs:     logs,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
	}
}

// Execute reminds every client booked for tomorrow. Appointments already
// reminded, or without a phone, are skipped; failures are counted and left
// for the next run.
func (uc *SendReminders) Execute(ctx context.Context) (*ReminderResult, error) {
	tomorrow := timezone.StartOfDay(uc.now(), uc.loc).AddDate(0, 0, 1)

	apps, err := uc.repo.ListAppointmentsBetween(
		ctx,
		tomorrow,
		timezone.EndOfDay(tomorrow, uc.loc),
	)
	if err != nil {
		return nil, domain.Unreadable(err)
	}

	res := &ReminderResult{Date: tomorrow.Format("2006-01-02")}

	for i := range apps {
		ap := &apps[i]

		if ap.ClientPhone == "" {
			res.Skipped++
			continue
		}

		done, err := uc.logs.HasNotification(ctx, ap.ID, KindReminder)
		if err != nil {
			log.Error().Err(err).Uint("appointment_id", ap.ID).Msg("notification log read failed")
			res.Failed++
			continue
		}
		if done {
			res.Skipped++
			continue
		}

		if err := uc.notifier.Notify(ctx, ap, KindReminder); err != nil {
			log.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("reminder not sent")
			res.Failed++
			continue
		}
		res.Sent++
	}

	log.Info().
		Str("date", res.Date).
		Int("sent", res.Sent).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("reminders processed")

	return res, nil
}
