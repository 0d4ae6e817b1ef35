package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barber_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Booking
	AppointmentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_appointments_created_total",
			Help: "Appointments booked, by service",
		},
		[]string{"service"},
	)

	SlotConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barber_slot_conflicts_total",
			Help: "Bookings rejected because the slot was taken",
		},
	)

	AppointmentsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barber_appointments_cancelled_total",
			Help: "Appointments deleted",
		},
	)

	// Notifications
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barber_notifications_total",
			Help: "WhatsApp messages by kind and outcome",
		},
		[]string{"kind", "status"},
	)
)

func RecordHTTPRequest(method, route, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func RecordAppointmentCreated(service string) {
	AppointmentsCreated.WithLabelValues(service).Inc()
}

func RecordSlotConflict() {
	SlotConflicts.Inc()
}

func RecordCancellation() {
	AppointmentsCancelled.Inc()
}

func RecordNotification(kind, status string) {
	NotificationsSent.WithLabelValues(kind, status).Inc()
}
