package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListFilter struct {
	From        *time.Time
	To          *time.Time
	ClientEmail string
}

type Repository interface {
	// -------- Availability --------
	ListAppointmentsBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Conflict guard (whole collection) --------
	ListScheduledTimes(
		ctx context.Context,
	) ([]ScheduledTime, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listing / reporting --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	RevenueSummary(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]RevenueRow, error)
}

type NotificationRepository interface {
	HasNotification(
		ctx context.Context,
		appointmentID uint,
		kind string,
	) (bool, error)

	RecordNotification(
		ctx context.Context,
		n *models.NotificationLog,
	) error
}
