package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

type DashboardOutput struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	domain.Dashboard
}

type Dashboard struct {
	repo domain.Repository
	loc  *time.Location
}

func NewDashboard(repo domain.Repository, loc *time.Location) *Dashboard {
	return &Dashboard{repo: repo, loc: loc}
}

func (uc *Dashboard) Execute(
	ctx context.Context,
	year int,
	month int,
) (*DashboardOutput, error) {

	start, end, err := monthBounds(year, month, uc.loc)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.RevenueSummary(ctx, start, end)
	if err != nil {
		return nil, domain.Unreadable(err)
	}

	return &DashboardOutput{
		Year:      year,
		Month:     month,
		Dashboard: domain.BuildDashboard(rows),
	}, nil
}

// monthBounds returns [first day of month, first day of next month) in loc.
func monthBounds(year, month int, loc *time.Location) (time.Time, time.Time, error) {
	if year < 2000 || year > 9999 || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, domain.ErrInvalidPeriod
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0), nil
}
