package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListGroupedInput struct {
	Page int
	// Optional YYYY-MM-DD bounds, inclusive.
	From string
	To   string
}

type ListGrouped struct {
	repo     domain.Repository
	loc      *time.Location
	pageSize int
}

func NewListGrouped(
	repo domain.Repository,
	loc *time.Location,
	pageSize int,
) *ListGrouped {
	return &ListGrouped{
		repo:     repo,
		loc:      loc,
		pageSize: pageSize,
	}
}

func (uc *ListGrouped) Execute(
	ctx context.Context,
	in ListGroupedInput,
) (domain.Page, error) {

	var filter domain.ListFilter

	if s := strings.TrimSpace(in.From); s != "" {
		d, err := timezone.ParseDate(s, uc.loc)
		if err != nil {
			return domain.Page{}, domain.ErrInvalidDateOrTime
		}
		from := timezone.StartOfDay(d, uc.loc)
		filter.From = &from
	}
	if s := strings.TrimSpace(in.To); s != "" {
		d, err := timezone.ParseDate(s, uc.loc)
		if err != nil {
			return domain.Page{}, domain.ErrInvalidDateOrTime
		}
		to := timezone.EndOfDay(d, uc.loc)
		filter.To = &to
	}

	apps, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return domain.Page{}, domain.Unreadable(err)
	}

	groups := domain.GroupByDateAndClient(apps, uc.loc)
	return domain.Paginate(groups, in.Page, uc.pageSize), nil
}
