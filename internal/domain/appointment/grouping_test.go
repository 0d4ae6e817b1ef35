package appointment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func ap(id uint, name, date, hm string) models.Appointment {
	return models.Appointment{ID: id, ClientName: name, ScheduledAt: at(date, hm)}
}

func ids(apps []models.Appointment) []uint {
	var out []uint
	for _, a := range apps {
		out = append(out, a.ID)
	}
	return out
}

func TestGroupByDateAndClient(t *testing.T) {
	apps := []models.Appointment{
		ap(1, "Ana", "2024-05-02", "09:00"),
		ap(2, "Bia", "2024-05-02", "09:30"),
		ap(3, "Ana", "2024-05-01", "10:00"),
	}

	groups := GroupByDateAndClient(apps, brt)

	require.Len(t, groups, 2)
	assert.Equal(t, "2024-05-01", groups[0].Date)
	assert.Equal(t, "2024-05-02", groups[1].Date)

	require.Len(t, groups[0].Groups, 1)
	assert.Equal(t, "Ana", groups[0].Groups[0].Name)
	assert.Equal(t, []uint{3}, ids(groups[0].Groups[0].Appointments))

	require.Len(t, groups[1].Groups, 2)
	assert.Equal(t, "Ana", groups[1].Groups[0].Name)
	assert.Equal(t, []uint{1}, ids(groups[1].Groups[0].Appointments))
	assert.Equal(t, "Bia", groups[1].Groups[1].Name)
	assert.Equal(t, []uint{2}, ids(groups[1].Groups[1].Appointments))
}

func TestGroupByDateAndClient_Empty(t *testing.T) {
	groups := GroupByDateAndClient(nil, brt)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupByDateAndClient_StableForEqualTimes(t *testing.T) {
	apps := []models.Appointment{
		ap(5, "Caio", "2024-05-01", "10:00"),
		ap(4, "Caio", "2024-05-01", "10:00"),
	}

	groups := GroupByDateAndClient(apps, brt)

	assert.Equal(t, []uint{5, 4}, ids(groups[0].Groups[0].Appointments))
}

func TestGroupByDateAndClient_Idempotent(t *testing.T) {
	apps := []models.Appointment{
		ap(1, "Ana", "2024-05-02", "09:00"),
		ap(2, "Bia", "2024-05-02", "09:30"),
		ap(3, "Ana", "2024-05-02", "10:00"),
		ap(4, "Ana", "2024-05-01", "10:00"),
		ap(5, "Caio", "2024-05-03", "17:30"),
	}

	once := GroupByDateAndClient(apps, brt)
	twice := GroupByDateAndClient(Flatten(once), brt)

	assert.Equal(t, once, twice)
}

func TestGroupByDateAndClient_UsesDisplayZone(t *testing.T) {
	// 01:00 UTC on May 2nd is still May 1st in BRT.
	a := models.Appointment{ID: 1, ClientName: "Ana", ScheduledAt: at("2024-05-01", "22:00").UTC()}

	groups := GroupByDateAndClient([]models.Appointment{a}, brt)

	require.Len(t, groups, 1)
	assert.Equal(t, "2024-05-01", groups[0].Date)
	assert.Equal(t, brt, groups[0].Groups[0].Appointments[0].ScheduledAt.Location())
}

func TestPaginate(t *testing.T) {
	var groups []DateGroup
	for _, d := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
		groups = append(groups, DateGroup{Date: d})
	}

	p := Paginate(groups, 1, 2)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 3, p.TotalDates)
	assert.Len(t, p.Dates, 2)

	p = Paginate(groups, 2, 2)
	require.Len(t, p.Dates, 1)
	assert.Equal(t, "2024-05-03", p.Dates[0].Date)

	p = Paginate(groups, 9, 2)
	assert.Empty(t, p.Dates)
	assert.Equal(t, 9, p.Page)

	p = Paginate(groups, math.MaxInt, 20)
	assert.Empty(t, p.Dates)
	assert.Equal(t, 1, p.TotalPages)

	p = Paginate(groups, math.MaxInt/20+2, 20)
	assert.Empty(t, p.Dates)

	p = Paginate(groups, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.PageSize)
	assert.Len(t, p.Dates, 1)
}
