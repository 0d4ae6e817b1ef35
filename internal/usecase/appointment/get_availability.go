package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailability struct {
	repo   domain.Repository
	loc    *time.Location
	policy domain.OffCatalogPolicy
}

func NewGetAvailability(
	repo domain.Repository,
	loc *time.Location,
	policy domain.OffCatalogPolicy,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		loc:    loc,
		policy: policy,
	}
}

// Execute returns every catalog slot of date (YYYY-MM-DD) annotated with
// whether it is taken.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]domain.SlotAvailability, error) {

	day, err := timezone.ParseDate(date, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidDateOrTime
	}

	apps, err := uc.repo.ListAppointmentsBetween(
		ctx,
		timezone.StartOfDay(day, uc.loc),
		timezone.EndOfDay(day, uc.loc),
	)
	if err != nil {
		return nil, domain.Unreadable(err)
	}

	scheduled := make([]time.Time, 0, len(apps))
	for _, ap := range apps {
		scheduled = append(scheduled, ap.ScheduledAt)
	}

	for _, at := range domain.OffCatalogTimes(scheduled, uc.loc) {
		log.Warn().
			Time("scheduled_at", at).
			Str("policy", string(uc.policy)).
			Msg("appointment outside the slot catalog")
	}

	slots, err := domain.ResolveAvailability(scheduled, uc.loc, uc.policy)
	if err != nil {
		// an off-catalog start leaves the day indeterminate
		return nil, domain.Unreadable(err)
	}
	return slots, nil
}
