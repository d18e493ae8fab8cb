// Package metrics exposes booking lifecycle and HTTP metrics for Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dakar_rentals"

type Metrics struct {
	registry *prometheus.Registry

	bookingsCreated     *prometheus.CounterVec
	statusChanges       *prometheus.CounterVec
	rejectedTransitions *prometheus.CounterVec
	bookingsDeleted     prometheus.Counter
	requestDuration     *prometheus.HistogramVec
}

// New registers every collector on a private registry so that tests can build
// as many instances as they like.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		bookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Count of bookings created by item type.",
		}, []string{"type"}),
		statusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_status_changes_total",
			Help:      "Count of booking status transitions.",
		}, []string{"from", "to"}),
		rejectedTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_rejected_total",
			Help:      "Count of transitions refused because the booking had left pending.",
		}, []string{"to"}),
		bookingsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_deleted_total",
			Help:      "Count of deleted bookings.",
		}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) BookingCreated(itemType inventory.ItemType) {
	m.bookingsCreated.WithLabelValues(itemType.String()).Inc()
}

func (m *Metrics) StatusChanged(from, to booking.Status) {
	m.statusChanges.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) TransitionRejected(to booking.Status) {
	m.rejectedTransitions.WithLabelValues(to.String()).Inc()
}

func (m *Metrics) BookingDeleted() {
	m.bookingsDeleted.Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
