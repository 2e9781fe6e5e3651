package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymcore_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_class_bookings_total",
			Help: "Total number of class bookings",
		},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_class_booking_cancellations_total",
			Help: "Total number of class booking cancellations",
		},
	)

	AttendanceTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_class_attendance_total",
			Help: "Total number of bookings marked attended",
		},
	)

	PTSessionsBookedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_pt_sessions_booked_total",
			Help: "Total number of personal training sessions booked",
		},
	)

	PTSessionsCancelledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_pt_sessions_cancelled_total",
			Help: "Total number of personal training sessions cancelled",
		},
	)

	SubscriptionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_subscriptions_created_total",
			Help: "Total number of subscriptions created",
		},
	)

	SubscriptionsFrozenTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_subscriptions_frozen_total",
			Help: "Total number of subscription freezes",
		},
	)

	SubscriptionsRenewedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcore_subscriptions_renewed_total",
			Help: "Total number of subscription renewals",
		},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_payments_total",
			Help: "Total number of payments by final status",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcore_emails_total",
			Help: "Total number of email delivery attempts",
		},
		[]string{"status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymcore_email_queue_length",
			Help: "Current length of the email queue",
		},
	)

	ActiveSubscriptions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymcore_active_subscriptions",
			Help: "Number of currently active subscriptions",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking() {
	BookingsTotal.Inc()
}

func RecordCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordAttendance() {
	AttendanceTotal.Inc()
}

func RecordSessionBooked() {
	PTSessionsBookedTotal.Inc()
}

func RecordSessionCancelled() {
	PTSessionsCancelledTotal.Inc()
}

func RecordSubscriptionCreated() {
	SubscriptionsCreatedTotal.Inc()
}

func RecordSubscriptionFrozen() {
	SubscriptionsFrozenTotal.Inc()
}

func RecordSubscriptionRenewed() {
	SubscriptionsRenewedTotal.Inc()
}

func RecordPayment(status string) {
	PaymentsTotal.WithLabelValues(status).Inc()
}

func RecordEmailSent() {
	EmailsSentTotal.WithLabelValues("sent").Inc()
}

func RecordEmailFailed() {
	EmailsSentTotal.WithLabelValues("failed").Inc()
}
