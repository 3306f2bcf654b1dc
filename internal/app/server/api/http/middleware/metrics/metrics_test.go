package metrics

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgmetrics "chipadmin/pkg/metrics"
)

func TestMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := New(pkgmetrics.NewManager(pkgmetrics.WithPrometheusRegistry(reg)))

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping/{id}",
		Middlewares: huma.Middlewares{mw.Middleware()},
	}, func(_ context.Context, _ *struct {
		ID string `path:"id"`
	}) (*struct{}, error) {
		return nil, nil
	})

	api.Get("/ping/1")
	api.Get("/ping/2")

	count, err := testutil.GatherAndCount(reg, "chipadmin_server_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one series per route template")
}
