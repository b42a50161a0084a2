package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed on /metrics.
// Each Metrics instance owns its own registry so that tests can create
// servers independently without duplicate registration panics.
type Metrics struct {
	registry       *prometheus.Registry
	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter
	sweepDuration  prometheus.Histogram
	handler        http.Handler
}

// NewMetrics creates a Metrics instance with a dedicated registry that
// also exports the standard Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gfcalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gfcalc_requests_total",
			Help: "Total number of HTTP requests served.",
		}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gfcalc_sweep_duration_seconds",
			Help:    "Duration of verification sweeps triggered over HTTP.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	registry.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		m.sweepDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increments the active requests gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests decrements the active requests gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest increments the total requests counter.
func (m *Metrics) CountRequest() {
	m.requestsTotal.Inc()
}

// ObserveSweepDuration records the wall-clock duration of a sweep.
func (m *Metrics) ObserveSweepDuration(d time.Duration) {
	m.sweepDuration.Observe(d.Seconds())
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
