package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var brt = time.FixedZone("BRT", -3*3600)

type stubRepo struct {
	mu      sync.Mutex
	apps    map[uint]models.Appointment
	nextID  uint
	readErr error
}

func newStubRepo(apps ...models.Appointment) *stubRepo {
	r := &stubRepo{apps: map[uint]models.Appointment{}}
	for _, ap := range apps {
		r.nextID++
		ap.ID = r.nextID
		r.apps[ap.ID] = ap
	}
	return r
}

func (r *stubRepo) all() []models.Appointment {
	out := make([]models.Appointment, 0, len(r.apps))
	for _, ap := range r.apps {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out
}

func (r *stubRepo) ListAppointmentsBetween(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}
	var out []models.Appointment
	for _, ap := range r.all() {
		if !ap.ScheduledAt.Before(start) && !ap.ScheduledAt.After(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *stubRepo) ListScheduledTimes(context.Context) ([]domain.ScheduledTime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}
	var out []domain.ScheduledTime
	for _, ap := range r.all() {
		out = append(out, domain.ScheduledTime{ID: ap.ID, At: ap.ScheduledAt})
	}
	return out, nil
}

func (r *stubRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ap.ID = r.nextID
	r.apps[ap.ID] = *ap
	return nil
}

func (r *stubRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return &ap, nil
}

func (r *stubRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[ap.ID] = *ap
	return nil
}

func (r *stubRepo) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *stubRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}
	out := []models.Appointment{}
	for _, ap := range r.all() {
		if f.ClientEmail != "" && ap.ClientEmail != f.ClientEmail {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *stubRepo) RevenueSummary(context.Context, time.Time, time.Time) ([]domain.RevenueRow, error) {
	return []domain.RevenueRow{
		{ServiceType: "corte_cabelo", PaymentStatus: "Paid", Count: 2, RevenueCents: 7000},
	}, nil
}

func (r *stubRepo) HasNotification(context.Context, uint, string) (bool, error) { return false, nil }

func (r *stubRepo) RecordNotification(context.Context, *models.NotificationLog) error { return nil }

type stubUsers struct {
	byEmail map[string]*models.User
}

func (s *stubUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (s *stubUsers) Create(_ context.Context, u *models.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	u.ID = uint(len(s.byEmail) + 1)
	s.byEmail[u.Email] = u
	return nil
}

type stubSender struct{ sent int }

func (s *stubSender) ProviderID() string { return "stub" }

func (s *stubSender) Send(context.Context, string, string) error {
	s.sent++
	return nil
}
