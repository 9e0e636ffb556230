// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsSaved         prometheus.Counter
	BookingsDeleted       prometheus.Counter
	BookingsEdited        *prometheus.CounterVec
	ValidationFailures    *prometheus.CounterVec
	ConfirmationsDeclined *prometheus.CounterVec
	BookingTotal          prometheus.Histogram
	StoreCorruptions      prometheus.Counter
}

// New creates and registers all collectors under the given service name.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_saved_total",
			Help:        "Bookings persisted after confirmation.",
			ConstLabels: constLabels,
		}),
		BookingsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_deleted_total",
			Help:        "Bookings removed by explicit delete.",
			ConstLabels: constLabels,
		}),
		BookingsEdited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_edited_total",
			Help:        "Bookings opened for editing, by edit mode.",
			ConstLabels: constLabels,
		}, []string{"mode"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validation_failures_total",
			Help:        "Submitted drafts rejected by validation, by field.",
			ConstLabels: constLabels,
		}, []string{"field"}),
		ConfirmationsDeclined: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "confirmations_declined_total",
			Help:        "Operations the user declined to confirm.",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		BookingTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "booking_total_amount",
			Help:        "Snapshotted totals of saved bookings.",
			ConstLabels: constLabels,
			Buckets:     []float64{5000, 10000, 20000, 50000, 100000, 200000},
		}),
		StoreCorruptions: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_store_corruptions_total",
			Help:        "Unparseable bookings documents treated as empty.",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsSaved,
		m.BookingsDeleted,
		m.BookingsEdited,
		m.ValidationFailures,
		m.ConfirmationsDeclined,
		m.BookingTotal,
		m.StoreCorruptions,
	)

	return m
}

// RegisterDB exposes connection pool stats of db.
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) BookingSaved(total int) {
	m.BookingsSaved.Inc()
	m.BookingTotal.Observe(float64(total))
}

func (m *Metrics) BookingDeleted() {
	m.BookingsDeleted.Inc()
}

func (m *Metrics) BookingEdited(mode string) {
	m.BookingsEdited.WithLabelValues(mode).Inc()
}

func (m *Metrics) ValidationFailed(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}

func (m *Metrics) ConfirmationDeclined(operation string) {
	m.ConfirmationsDeclined.WithLabelValues(operation).Inc()
}

func (m *Metrics) StoreCorrupted() {
	m.StoreCorruptions.Inc()
}

// Nop satisfies every recorder interface of the service without recording anything.
type Nop struct{}

func (Nop) BookingSaved(int)            {}
func (Nop) BookingDeleted()             {}
func (Nop) BookingEdited(string)        {}
func (Nop) ValidationFailed(string)     {}
func (Nop) ConfirmationDeclined(string) {}
func (Nop) StoreCorrupted()             {}
