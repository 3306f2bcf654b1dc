// Package metrics provides Prometheus metrics for the admin panel client and server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds request metrics for both directions:
// outbound calls to the backend and inbound requests to the panel server.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	clientRequests        *prometheus.CounterVec
	clientRequestDuration *prometheus.HistogramVec
	clientErrors          *prometheus.CounterVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry
// metrics land on prometheus.DefaultRegisterer.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "chipadmin",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.clientRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of backend API requests by resource, method and status code",
		},
		[]string{"resource", "method", "status_code"},
	)

	m.clientRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Backend API request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"resource", "method"},
	)

	m.clientErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "client",
			Name:      "transport_errors_total",
			Help:      "Backend API requests that failed before a response was received",
		},
		[]string{"resource", "method"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: "server",
			Name:      "http_requests_total",
			Help:      "Total number of panel server requests by endpoint, method and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: "server",
			Name:      "http_request_duration_seconds",
			Help:      "Panel server request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method"},
	)
}

// ObserveClientRequest records a completed backend round trip.
// status 0 means the request never produced a response.
func (m *Manager) ObserveClientRequest(resource, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	if status == 0 {
		m.clientErrors.WithLabelValues(resource, method).Inc()
	} else {
		m.clientRequests.WithLabelValues(resource, method, strconv.Itoa(status)).Inc()
	}
	m.clientRequestDuration.WithLabelValues(resource, method).Observe(d.Seconds())
}

// ObserveHTTPRequest records an inbound panel server request.
func (m *Manager) ObserveHTTPRequest(endpoint, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method).Observe(d.Seconds())
}
