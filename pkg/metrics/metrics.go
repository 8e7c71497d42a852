package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	CachedSlots  prometheus.Gauge
	LoadedMonths prometheus.Gauge
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request processing time",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		UpstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to upstream services",
			ConstLabels: constLabels,
		}, []string{"upstream", "operation", "outcome"}),

		UpstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Upstream request round-trip time",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"upstream", "operation"}),

		CachedSlots: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "slot_cache_entries",
			Help:        "Number of slots currently held in the in-memory cache",
			ConstLabels: constLabels,
		}),

		LoadedMonths: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "slot_cache_loaded_months",
			Help:        "Number of months marked as loaded in the slot cache",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTP records a single handled HTTP request.
func (m *Metrics) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveUpstream records a single upstream call.
func (m *Metrics) ObserveUpstream(upstream, operation, outcome string, elapsed time.Duration) {
	m.UpstreamRequestsTotal.WithLabelValues(upstream, operation, outcome).Inc()
	m.UpstreamRequestDuration.WithLabelValues(upstream, operation).Observe(elapsed.Seconds())
}

// SetCacheSize updates the cache gauges.
func (m *Metrics) SetCacheSize(slots, months int) {
	m.CachedSlots.Set(float64(slots))
	m.LoadedMonths.Set(float64(months))
}
