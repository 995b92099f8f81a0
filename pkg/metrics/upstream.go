package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics records call metadata for the storefront API client.
type UpstreamMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewUpstreamMetrics registers the upstream client metrics on the provided registerer.
func NewUpstreamMetrics(reg prometheus.Registerer) *UpstreamMetrics {
	if reg == nil {
		return &UpstreamMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of storefront API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Storefront API requests by resource, method, and status.",
	}, []string{"resource", "method", "status"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_request_failures_total",
		Help: "Storefront API requests that failed before a response arrived.",
	}, []string{"resource"})
	reg.MustRegister(duration, requests, failures)
	return &UpstreamMetrics{
		duration: duration,
		requests: requests,
		failures: failures,
	}
}

// ObserveRequest records a completed round trip.
func (m *UpstreamMetrics) ObserveRequest(resource, method string, status int, duration time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(normalizeLabel(resource), method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(normalizeLabel(resource)).Observe(duration.Seconds())
}

// IncFailure counts a request that never produced a response.
func (m *UpstreamMetrics) IncFailure(resource string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(resource)).Inc()
}

func normalizeLabel(resource string) string {
	if resource == "" {
		return "unknown"
	}
	return resource
}
