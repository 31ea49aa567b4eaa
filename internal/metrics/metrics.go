package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "peerlend",
			Name:      "http_requests_total",
			Help:      "HTTP requests by handler, method and status code.",
		},
		[]string{"handler", "method", "code"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "peerlend",
			Name:      "bookings_created_total",
			Help:      "Bookings successfully created.",
		},
	)

	bookingDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "peerlend",
			Name:      "booking_decisions_total",
			Help:      "Owner decisions on bookings by outcome.",
		},
		[]string{"decision"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingDecisions)
	})
}

// IncHTTP increments the request counter for a handler/method/code triple.
func IncHTTP(handler, method, code string) {
	httpRequests.WithLabelValues(handler, method, code).Inc()
}

// IncBookingCreated increments the created-bookings counter.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncBookingDecision increments the decision counter ("approved" or "rejected").
func IncBookingDecision(decision string) {
	bookingDecisions.WithLabelValues(decision).Inc()
}
