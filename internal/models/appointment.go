package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;index" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	// One appointment per start instant; the index is what makes the
	// booking write an insert-if-absent.
	ScheduledAt time.Time `gorm:"not null;uniqueIndex:idx_appointments_scheduled_at" json:"scheduled_at"`

	ServiceType   string `gorm:"size:30;not null" json:"service_type"`
	PaymentStatus string `gorm:"size:20;default:'Pending'" json:"payment_status"`
	PriceCents    int64  `gorm:"not null" json:"price_cents"`

	BookedByID *uint  `json:"booked_by_id"`
	Notes      string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
