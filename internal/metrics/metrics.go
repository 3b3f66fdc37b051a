package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "villabook",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by type.",
		},
		[]string{"type"},
	)

	bookingDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "villabook",
			Name:      "booking_deleted_total",
			Help:      "Count of bookings deleted.",
		},
	)

	conflictRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "villabook",
			Name:      "booking_conflict_rejected_total",
			Help:      "Count of bookings rejected for date-range conflicts.",
		},
	)

	validationFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "villabook",
			Name:      "booking_validation_failed_total",
			Help:      "Count of bookings rejected by field validation.",
		},
	)

	searches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "villabook",
			Name:      "search_queries_total",
			Help:      "Count of free-text search queries.",
		},
	)

	persistFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "villabook",
			Name:      "persist_failures_total",
			Help:      "Count of store write failures that were swallowed.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "villabook",
			Name:      "http_requests_total",
			Help:      "Count of API requests by handler.",
		},
		[]string{"handler"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingCreated, bookingDeleted, conflictRejected,
			validationFailed, searches, persistFailures, httpRequests,
		)
	})
}

func IncBookingCreated(bookingType string) {
	bookingCreated.WithLabelValues(bookingType).Inc()
}

func IncBookingDeleted() {
	bookingDeleted.Inc()
}

func IncConflictRejected() {
	conflictRejected.Inc()
}

func IncValidationFailed() {
	validationFailed.Inc()
}

func IncSearch() {
	searches.Inc()
}

func IncPersistFailure() {
	persistFailures.Inc()
}

func IncHTTP(handler string) {
	httpRequests.WithLabelValues(handler).Inc()
}
