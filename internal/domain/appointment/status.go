package appointment

import "strings"

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// InitialPaymentStatus is the status of every new appointment.
func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}

// ParsePaymentStatus accepts either status in any letter case. There is no
// transition rule: admins move freely between Pending and Paid.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return PaymentPending, nil
	case "paid":
		return PaymentPaid, nil
	}
	return "", ErrInvalidPaymentStatus
}
