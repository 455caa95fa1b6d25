package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "chiclon"

	OutcomeBooked         = "booked"
	OutcomeRejected       = "rejected"
	OutcomeDeliveryFailed = "delivery_failed"
	OutcomeSent           = "sent"

	StatusOK    = "ok"
	StatusError = "error"
)

// BookingMetrics counts booking outcomes and times backend deliveries. A nil receiver records nothing.
type BookingMetrics struct {
	bookingsTotal    *prometheus.CounterVec
	deliveryDuration *prometheus.HistogramVec
	contactTotal     *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Booking requests by outcome",
		}, []string{"outcome"}),
		deliveryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "delivery_duration_seconds",
			Help:      "Time spent handing a confirmed appointment to its backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend", "status"}),
		contactTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "messages_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"outcome"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	reg.MustRegister(m.bookingsTotal, m.deliveryDuration, m.contactTotal)

	return m
}

// NewDefault registers on the default registry served at /metrics.
func NewDefault() *BookingMetrics {
	return NewBookingMetrics(prometheus.DefaultRegisterer)
}

func (m *BookingMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}

	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveDelivery(backend string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}

	status := StatusOK
	if err != nil {
		status = StatusError
	}

	m.deliveryDuration.WithLabelValues(backend, status).Observe(elapsed.Seconds())
}

func (m *BookingMetrics) ObserveContact(outcome string) {
	if m == nil {
		return
	}

	m.contactTotal.WithLabelValues(outcome).Inc()
}
