package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("scheduled_at >= ? AND scheduled_at <= ?", start, end).
		Order("scheduled_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Conflict guard
// --------------------------------------------------

func (r *AppointmentGormRepository) ListScheduledTimes(
	ctx context.Context,
) ([]domain.ScheduledTime, error) {

	var rows []struct {
		ID          uint
		ScheduledAt time.Time
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("id", "scheduled_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ScheduledTime, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ScheduledTime{ID: row.ID, At: row.ScheduledAt})
	}
	return out, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// CreateAppointment relies on the unique index over scheduled_at: a
// concurrent booking of the same start surfaces as a slot conflict.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsUniqueConflict(err) {
			return &domain.SlotConflictError{At: ap.ScheduledAt}
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// Updates never inserts: a row deleted meanwhile reports not found.
	res := r.db.WithContext(ctx).
		Model(ap).
		Select("*").
		Omit("created_at").
		Updates(ap)
	if res.Error != nil {
		if httperr.IsUniqueConflict(res.Error) {
			return &domain.SlotConflictError{At: ap.ScheduledAt}
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// --------------------------------------------------
// Listing / reporting
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.From != nil {
		q = q.Where("scheduled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("scheduled_at <= ?", *filter.To)
	}
	if filter.ClientEmail != "" {
		q = q.Where("client_email = ?", filter.ClientEmail)
	}

	var apps []models.Appointment
	if err := q.Order("scheduled_at ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func revenueQuery(start, end time.Time) (string, []any, error) {
	return sq.
		Select(
			"service_type",
			"payment_status",
			"COUNT(*) AS count",
			"COALESCE(SUM(price_cents), 0) AS revenue_cents",
		).
		From("appointments").
		Where(sq.GtOrEq{"scheduled_at": start}).
		Where(sq.Lt{"scheduled_at": end}).
		GroupBy("service_type", "payment_status").
		OrderBy("service_type", "payment_status").
		ToSql()
}

func (r *AppointmentGormRepository) RevenueSummary(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]domain.RevenueRow, error) {

	query, args, err := revenueQuery(start, end)
	if err != nil {
		return nil, err
	}

	var rows []domain.RevenueRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Notifications
// --------------------------------------------------

func (r *AppointmentGormRepository) HasNotification(
	ctx context.Context,
	appointmentID uint,
	kind string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.NotificationLog{}).
		Where("appointment_id = ? AND kind = ?", appointmentID, kind).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) RecordNotification(
	ctx context.Context,
	n *models.NotificationLog,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// Compile-time check
var (
	_ domain.Repository             = (*AppointmentGormRepository)(nil)
	_ domain.NotificationRepository = (*AppointmentGormRepository)(nil)
)
