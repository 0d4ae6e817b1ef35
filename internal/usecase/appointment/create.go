package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Actor Actor

	ClientName  string
	ClientEmail string
	ClientPhone string

	Service string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *Notifier

	loc        *time.Location
	minAdvance time.Duration
	now        clock
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *Notifier,
	loc *time.Location,
	minAdvance time.Duration,
) *CreateAppointment {
	return &CreateAppointment{
		repo:       repo,
		audit:      audit,
		notifier:   notifier,
		loc:        loc,
		minAdvance: minAdvance,
		now:        time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Serviço
	// --------------------------------------------------
	service, err := domain.ParseServiceType(in.Service)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Horário do catálogo (antes de qualquer escrita)
	// --------------------------------------------------
	hm := strings.TrimSpace(in.Time)
	if !domain.IsCatalogSlot(hm) {
		return nil, domain.ErrInvalidSlotSelection
	}

	start, err := timezone.ParseDateTime(strings.TrimSpace(in.Date), hm, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidDateOrTime
	}

	// --------------------------------------------------
	// 3️⃣ Passado / antecedência mínima (só clientes)
	// --------------------------------------------------
	now := uc.now()
	if start.Before(now) {
		return nil, domain.ErrSlotInPast
	}
	if !in.Actor.IsAdmin() && start.Before(now.Add(uc.minAdvance)) {
		return nil, domain.ErrTooSoon
	}

	ap, err := domain.NewAppointment(domain.NewAppointmentInput{
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		ScheduledAt: start,
		Service:     service,
		BookedByID:  in.Actor.idPtr(),
		Notes:       in.Notes,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Conflito de horário
	// --------------------------------------------------
	existing, err := uc.repo.ListScheduledTimes(ctx)
	if err != nil {
		return nil, domain.Unreadable(err)
	}

	if err := domain.CheckConflict(start, existing, 0); err != nil {
		metrics.RecordSlotConflict()
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Criação
	// --------------------------------------------------
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			metrics.RecordSlotConflict()
			return nil, err
		}
		return nil, domain.WriteFailed(err)
	}

	metrics.RecordAppointmentCreated(ap.ServiceType)

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.Actor.idPtr(),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"scheduled_at": ap.ScheduledAt.Format(time.RFC3339),
			"service":      ap.ServiceType,
		},
	})

	// --------------------------------------------------
	// 7️⃣ Confirmação (melhor esforço)
	// --------------------------------------------------
	if uc.notifier != nil && ap.ClientPhone != "" {
		if err := uc.notifier.Notify(ctx, ap, KindConfirmation); err != nil {
			log.Warn().Err(err).Uint("appointment_id", ap.ID).Msg("confirmation not sent")
		}
	}

	return ap, nil
}
