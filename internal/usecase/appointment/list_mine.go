package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListMine struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListMine(repo domain.Repository, loc *time.Location) *ListMine {
	return &ListMine{repo: repo, loc: loc}
}

func (uc *ListMine) Execute(
	ctx context.Context,
	actor Actor,
) ([]models.Appointment, error) {

	email := strings.ToLower(strings.TrimSpace(actor.Email))
	if email == "" {
		return []models.Appointment{}, nil
	}

	apps, err := uc.repo.ListAppointments(ctx, domain.ListFilter{ClientEmail: email})
	if err != nil {
		return nil, domain.Unreadable(err)
	}

	for i := range apps {
		apps[i].ScheduledAt = apps[i].ScheduledAt.In(uc.loc)
	}
	return apps, nil
}
