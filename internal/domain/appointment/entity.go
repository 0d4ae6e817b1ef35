package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type NewAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	ScheduledAt time.Time
	Service     ServiceType
	BookedByID  *uint
	Notes       string
}

// NewAppointment builds a pending appointment, freezing the current price of
// the service on the record.
func NewAppointment(in NewAppointmentInput) (*models.Appointment, error) {
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return nil, ErrInvalidClientName
	}

	info, ok := in.Service.Info()
	if !ok {
		return nil, ErrInvalidService
	}

	return &models.Appointment{
		ClientName:    name,
		ClientEmail:   normalizeEmail(in.ClientEmail),
		ClientPhone:   strings.TrimSpace(in.ClientPhone),
		ScheduledAt:   in.ScheduledAt,
		ServiceType:   string(info.Type),
		PaymentStatus: string(InitialPaymentStatus()),
		PriceCents:    info.PriceCents,
		BookedByID:    in.BookedByID,
		Notes:         strings.TrimSpace(in.Notes),
	}, nil
}

// Rename updates the client identity fields of an existing appointment.
func Rename(ap *models.Appointment, name, email *string) error {
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return ErrInvalidClientName
		}
		ap.ClientName = n
	}
	if email != nil {
		ap.ClientEmail = normalizeEmail(*email)
	}
	return nil
}

func SetPaymentStatus(ap *models.Appointment, status PaymentStatus) {
	ap.PaymentStatus = string(status)
}

// OwnedBy reports whether a client account may act on ap.
func OwnedBy(ap *models.Appointment, email string) bool {
	e := normalizeEmail(email)
	return e != "" && ap.ClientEmail == e
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
