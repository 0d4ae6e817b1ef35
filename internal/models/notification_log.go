package models

import "time"

// NotificationLog records WhatsApp messages handed to the gateway so the
// reminder cron does not message the same appointment twice.
type NotificationLog struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	AppointmentID uint   `gorm:"not null;uniqueIndex:idx_notification_appointment_kind" json:"appointment_id"`
	Kind          string `gorm:"size:20;not null;uniqueIndex:idx_notification_appointment_kind" json:"kind"`
	Recipient     string `gorm:"size:20" json:"recipient"`
	Provider      string `gorm:"size:30" json:"provider"`

	SentAt time.Time `json:"sent_at"`
}
