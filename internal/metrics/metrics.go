// Package metrics holds the Prometheus collectors of the relay and the
// handler that exposes them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "relay"

// Submission outcomes used as the "outcome" label.
const (
	OutcomeDispatched = "dispatched"
	OutcomeEmpty      = "empty"
	OutcomeRejected   = "rejected"
	OutcomeFailed     = "failed"
)

// Metrics groups the relay collectors. Each instance owns its registry so
// tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	// HTTPRequests counts answered inbound requests by method and status.
	HTTPRequests *prometheus.CounterVec
	// Submissions counts relayed submissions by outcome.
	Submissions *prometheus.CounterVec
	// DispatchDuration observes the time spent in the submission pipeline
	// for submissions that reached the dispatch endpoint.
	DispatchDuration prometheus.Histogram
}

// New creates the relay collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of answered relay requests",
			},
			[]string{"method", "status"},
		),
		Submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_total",
				Help:      "Total number of relayed submissions by outcome",
			},
			[]string{"outcome"},
		),
		DispatchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_duration_seconds",
				Help:      "Duration of repository dispatch calls",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	m.registry.MustRegister(
		m.HTTPRequests,
		m.Submissions,
		m.DispatchDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
