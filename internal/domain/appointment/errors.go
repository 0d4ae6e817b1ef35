package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var (
	ErrAvailabilityUnreadable = httperr.ErrBusiness("availability_unreadable")
	ErrSlotConflict           = httperr.ErrBusiness("slot_conflict")
	ErrInvalidSlotSelection   = httperr.ErrBusiness("invalid_slot")
	ErrWriteFailed            = httperr.ErrBusiness("write_failed")

	ErrOffCatalogAppointment = httperr.ErrBusiness("off_catalog_appointment")
	ErrInvalidDateOrTime     = httperr.ErrBusiness("invalid_date_or_time")
	ErrInvalidService        = httperr.ErrBusiness("invalid_service")
	ErrInvalidPaymentStatus  = httperr.ErrBusiness("invalid_payment_status")
	ErrInvalidClientName     = httperr.ErrBusiness("invalid_client_name")
	ErrSlotInPast            = httperr.ErrBusiness("slot_in_past")
	ErrAppointmentNotFound   = httperr.ErrBusiness("appointment_not_found")
	ErrForbidden             = httperr.ErrBusiness("forbidden")
	ErrTooSoon               = httperr.ErrBusiness("too_soon")
	ErrInvalidPeriod         = httperr.ErrBusiness("invalid_period")

	ErrMissingPhone            = httperr.ErrBusiness("client_phone_missing")
	ErrInvalidNotificationKind = httperr.ErrBusiness("invalid_notification_kind")
	ErrIntegrationUnavailable  = httperr.ErrBusiness("integration_unavailable")
	ErrIntegrationFailed       = httperr.ErrBusiness("integration_failed")
)

// SlotConflictError names the start time that is already taken.
type SlotConflictError struct {
	At time.Time
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot_conflict: %s", e.At.Format(time.RFC3339))
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}

func Unreadable(err error) error {
	return fmt.Errorf("%w: %w", ErrAvailabilityUnreadable, err)
}

func WriteFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrWriteFailed, err)
}

func IntegrationFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrIntegrationFailed, err)
}
