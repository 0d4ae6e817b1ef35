package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ClientGroup struct {
	Name         string               `json:"name"`
	Appointments []models.Appointment `json:"appointments"`
}

type DateGroup struct {
	Date   string        `json:"date"`
	Groups []ClientGroup `json:"groups"`
}

// GroupByDateAndClient sorts appointments chronologically (stable) in loc and
// nests them by calendar date, then by client name in order of first
// appearance within the day.
func GroupByDateAndClient(apps []models.Appointment, loc *time.Location) []DateGroup {
	sorted := make([]models.Appointment, len(apps))
	for i, ap := range apps {
		ap.ScheduledAt = ap.ScheduledAt.In(loc)
		sorted[i] = ap
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScheduledAt.Before(sorted[j].ScheduledAt)
	})

	out := make([]DateGroup, 0)
	dateIdx := make(map[string]int)
	clientIdx := make(map[string]map[string]int)

	for _, ap := range sorted {
		date := ap.ScheduledAt.Format("2006-01-02")

		di, ok := dateIdx[date]
		if !ok {
			di = len(out)
			dateIdx[date] = di
			clientIdx[date] = make(map[string]int)
			out = append(out, DateGroup{Date: date, Groups: []ClientGroup{}})
		}

		ci, ok := clientIdx[date][ap.ClientName]
		if !ok {
			ci = len(out[di].Groups)
			clientIdx[date][ap.ClientName] = ci
			out[di].Groups = append(out[di].Groups, ClientGroup{Name: ap.ClientName})
		}

		out[di].Groups[ci].Appointments = append(out[di].Groups[ci].Appointments, ap)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	return out
}

// Flatten walks the groups back into a single list.
func Flatten(groups []DateGroup) []models.Appointment {
	var out []models.Appointment
	for _, dg := range groups {
		for _, cg := range dg.Groups {
			out = append(out, cg.Appointments...)
		}
	}
	return out
}

type Page struct {
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
	TotalDates int         `json:"total_dates"`
	Dates      []DateGroup `json:"dates"`
}

// Paginate slices date groups into fixed-size pages; page is 1-based.
func Paginate(groups []DateGroup, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 1
	}
	if page <= 0 {
		page = 1
	}

	total := len(groups)
	totalPages := (total + pageSize - 1) / pageSize

	start := total
	if page <= totalPages {
		start = (page - 1) * pageSize
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalDates: total,
		Dates:      groups[start:end],
	}
}
