// Package metrics provides Prometheus metrics for the person directory API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "people"
	subsystem = "api"
)

// Lookup outcomes recorded by ObserveLookup.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
)

// Metrics holds every collector the API records to. Each Metrics owns its
// registry so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	validationFailures  *prometheus.CounterVec
	personLookups       *prometheus.CounterVec
	uploadBytes         prometheus.Histogram
}

// New creates a Metrics with its own registry, including Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auto := promauto.With(reg)
	return &Metrics{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		validationFailures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "validation_failures_total",
			Help:      "Field violations reported in 422 responses, by parameter location",
		}, []string{"location"}),
		personLookups: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "person_lookups_total",
			Help:      "Person ID lookups against the directory, by outcome",
		}, []string{"outcome"}),
		uploadBytes: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "upload_size_bytes",
			Help:      "Size of uploaded images in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(route, method, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, status).Observe(elapsed.Seconds())
}

// ObserveViolation records one field violation at the given location.
func (m *Metrics) ObserveViolation(location string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(location).Inc()
}

// ObserveLookup records a directory lookup outcome.
func (m *Metrics) ObserveLookup(outcome string) {
	if m == nil {
		return
	}
	m.personLookups.WithLabelValues(outcome).Inc()
}

// ObserveUpload records the size of an uploaded file.
func (m *Metrics) ObserveUpload(sizeBytes int64) {
	if m == nil {
		return
	}
	m.uploadBytes.Observe(float64(sizeBytes))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
