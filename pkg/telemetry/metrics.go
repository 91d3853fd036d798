// Package telemetry exposes Prometheus metrics for the room status service.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "roomstatus"

// Metrics holds the service collectors on a private registry. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	// HTTP metrics
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	// Document metrics
	builds        *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec

	// Write metrics
	actions    *prometheus.CounterVec
	rejections *prometheus.CounterVec

	rooms prometheus.Gauge

	registry *prometheus.Registry
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "document_builds_total",
				Help:      "Total number of room status documents built",
			},
			[]string{"room"},
		),
		buildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "document_build_duration_seconds",
				Help:      "Duration of room status document builds in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
			},
			[]string{"room"},
		),

		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "actions_total",
				Help:      "Total number of executed state and activity changes",
			},
			[]string{"room", "kind"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "requests_rejected_total",
				Help:      "Total number of rejected room status requests",
			},
			[]string{"room", "reason"},
		),

		rooms: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "rooms",
				Help:      "Number of configured rooms",
			},
		),
	}

	registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.builds,
		m.buildDuration,
		m.actions,
		m.rejections,
		m.rooms,
	)

	return m
}

// RecordRequest records a served HTTP request.
func (m *Metrics) RecordRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordBuild records one document build for room.
func (m *Metrics) RecordBuild(room string, duration time.Duration) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(room).Inc()
	m.buildDuration.WithLabelValues(room).Observe(duration.Seconds())
}

// RecordAction records an executed state or activity change.
func (m *Metrics) RecordAction(room, kind string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(room, kind).Inc()
}

// RecordRejection records a request refused with reason ("auth", "validation").
func (m *Metrics) RecordRejection(room, reason string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(room, reason).Inc()
}

// SetRooms sets the number of configured rooms.
func (m *Metrics) SetRooms(n int) {
	if m == nil {
		return
	}
	m.rooms.Set(float64(n))
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
