package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestManager_ObserveClientRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(WithPrometheusRegistry(reg))

	m.ObserveClientRequest("chipform", "POST", 200, 10*time.Millisecond)
	m.ObserveClientRequest("chipform", "POST", 200, 20*time.Millisecond)
	m.ObserveClientRequest("users", "DELETE", 500, time.Millisecond)
	m.ObserveClientRequest("users", "GET", 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.clientRequests.WithLabelValues("chipform", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.clientRequests.WithLabelValues("users", "DELETE", "500")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.clientErrors.WithLabelValues("users", "GET")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.clientRequestDuration))
}

func TestManager_ObserveHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(WithPrometheusRegistry(reg), WithNamespace("panel"))

	m.ObserveHTTPRequest("/api/v1/routes", "GET", 200, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/routes", "GET", "200")))

	families, err := reg.Gather()
	assert.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "panel_server_http_requests_total")
}

func TestManager_NilSafe(t *testing.T) {
	var m *Manager

	assert.NotPanics(t, func() {
		m.ObserveClientRequest("users", "GET", 200, time.Millisecond)
		m.ObserveHTTPRequest("/", "GET", 200, time.Millisecond)
	})
}
