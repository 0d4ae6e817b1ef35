package appointment

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/payment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var (
	brt     = time.FixedZone("BRT", -3*3600)
	errDisk = errors.New("disk on fire")
)

// fixedNow is 2024-05-01 08:00 BRT.
func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 8, 0, 0, 0, brt)
}

func at(date, hm string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hm, brt)
	if err != nil {
		panic(err)
	}
	return t
}

// ======================================================
// Repository
// ======================================================

type memRepo struct {
	mu     sync.Mutex
	nextID uint
	apps   map[uint]models.Appointment
	notes  []models.NotificationLog

	readErr  error
	writeErr error
	// skipUnique simulates a storage without the unique index.
	skipUnique bool
}

func newMemRepo(apps ...models.Appointment) *memRepo {
	r := &memRepo{apps: map[uint]models.Appointment{}}
	for _, ap := range apps {
		r.nextID++
		if ap.ID == 0 {
			ap.ID = r.nextID
		}
		r.apps[ap.ID] = ap
	}
	return r
}

func (r *memRepo) sorted() []models.Appointment {
	out := make([]models.Appointment, 0, len(r.apps))
	for _, ap := range r.apps {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out
}

func (r *memRepo) ListAppointmentsBetween(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}

	var out []models.Appointment
	for _, ap := range r.sorted() {
		if !ap.ScheduledAt.Before(start) && !ap.ScheduledAt.After(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memRepo) ListScheduledTimes(context.Context) ([]domain.ScheduledTime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}

	var out []domain.ScheduledTime
	for _, ap := range r.sorted() {
		out = append(out, domain.ScheduledTime{ID: ap.ID, At: ap.ScheduledAt})
	}
	return out, nil
}

func (r *memRepo) taken(at time.Time, exclude uint) bool {
	for _, ap := range r.apps {
		if ap.ID != exclude && ap.ScheduledAt.Equal(at) {
			return true
		}
	}
	return false
}

func (r *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	if !r.skipUnique && r.taken(ap.ScheduledAt, 0) {
		return &domain.SlotConflictError{At: ap.ScheduledAt}
	}

	r.nextID++
	ap.ID = r.nextID
	r.apps[ap.ID] = *ap
	return nil
}

func (r *memRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}

	ap, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return &ap, nil
}

func (r *memRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	if !r.skipUnique && r.taken(ap.ScheduledAt, ap.ID) {
		return &domain.SlotConflictError{At: ap.ScheduledAt}
	}
	r.apps[ap.ID] = *ap
	return nil
}

func (r *memRepo) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	if _, ok := r.apps[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *memRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}

	out := []models.Appointment{}
	for _, ap := range r.sorted() {
		if f.From != nil && ap.ScheduledAt.Before(*f.From) {
			continue
		}
		if f.To != nil && ap.ScheduledAt.After(*f.To) {
			continue
		}
		if f.ClientEmail != "" && ap.ClientEmail != f.ClientEmail {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *memRepo) RevenueSummary(_ context.Context, start, end time.Time) ([]domain.RevenueRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}

	idx := map[[2]string]*domain.RevenueRow{}
	var out []domain.RevenueRow
	var keys [][2]string
	for _, ap := range r.sorted() {
		if ap.ScheduledAt.Before(start) || !ap.ScheduledAt.Before(end) {
			continue
		}
		k := [2]string{ap.ServiceType, ap.PaymentStatus}
		row, ok := idx[k]
		if !ok {
			row = &domain.RevenueRow{ServiceType: k[0], PaymentStatus: k[1]}
			idx[k] = row
			keys = append(keys, k)
		}
		row.Count++
		row.RevenueCents += ap.PriceCents
	}
	for _, k := range keys {
		out = append(out, *idx[k])
	}
	return out, nil
}

func (r *memRepo) HasNotification(_ context.Context, id uint, kind string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notes {
		if n.AppointmentID == id && n.Kind == kind {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) RecordNotification(_ context.Context, n *models.NotificationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, *n)
	return nil
}

var (
	_ domain.Repository             = (*memRepo)(nil)
	_ domain.NotificationRepository = (*memRepo)(nil)
)

// ======================================================
// Integrations
// ======================================================

type sentMessage struct {
	To   string
	Body string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (s *fakeSender) ProviderID() string { return "fake" }

func (s *fakeSender) Send(_ context.Context, to, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMessage{To: to, Body: body})
	return nil
}

type fakeGateway struct {
	got payment.CheckoutRequest
	err error
}

func (g *fakeGateway) CreateCheckout(_ context.Context, req payment.CheckoutRequest) (*payment.Checkout, error) {
	g.got = req
	if g.err != nil {
		return nil, g.err
	}
	return &payment.Checkout{PreferenceID: "pref-1", URL: "https://mp.example/checkout/pref-1"}, nil
}

type fakeStore struct {
	key  string
	body []byte
	err  error
}

func (s *fakeStore) Bucket() string { return "reports" }

func (s *fakeStore) Put(_ context.Context, key, _ string, body []byte) error {
	if s.err != nil {
		return s.err
	}
	s.key = key
	s.body = body
	return nil
}

// ======================================================
// Fixtures
// ======================================================

var (
	admin  = Actor{UserID: 1, Email: "admin@barbearia.com", Role: models.RoleAdmin}
	client = Actor{UserID: 2, Email: "ana@example.com", Role: models.RoleClient}
)

func booked(id uint, when time.Time, name string) models.Appointment {
	return models.Appointment{
		ID:            id,
		ClientName:    name,
		ClientEmail:   "ana@example.com",
		ClientPhone:   "11987654321",
		ScheduledAt:   when,
		ServiceType:   string(domain.ServiceHaircut),
		PaymentStatus: string(domain.PaymentPending),
		PriceCents:    3500,
	}
}

func strPtr(s string) *string { return &s }
