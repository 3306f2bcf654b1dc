package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"chipadmin/internal/api/resource/resourcetest"
	"chipadmin/internal/app/client/config"
	"chipadmin/internal/router"
	"chipadmin/pkg/metrics"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{RequestTimeout: time.Second}
	m := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))

	app, err := New(cfg, slog.Default(), m)

	require.NoError(t, err)
	assert.NotNil(t, app.ChipForm)
	assert.NotNil(t, app.Information)
	assert.NotNil(t, app.Users)
	assert.NotNil(t, app.Logger())
}

func TestNew_InvalidServerAddress(t *testing.T) {
	cfg := &config.Config{RequestTimeout: time.Second, ServerAddress: "bad host:%%"}

	_, err := New(cfg, slog.Default(), nil)

	assert.Error(t, err)
}

func TestApp_SharesRequester(t *testing.T) {
	r := new(resourcetest.MockRequester)
	r.On("Request", mock.Anything, http.MethodGet, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	app := NewWithRequester(&config.Config{}, slog.Default(), r)
	ctx := context.Background()

	_, err := app.ChipForm.GetChipList(ctx)
	require.NoError(t, err)
	_, err = app.Information.GetInfoList(ctx)
	require.NoError(t, err)
	_, err = app.Users.GetUserList(ctx)
	require.NoError(t, err)

	r.AssertNumberOfCalls(t, "Request", 3)
}

func TestApp_Routes(t *testing.T) {
	app := NewWithRequester(&config.Config{HideHome: "true"}, slog.Default(), nil)

	routes := app.Routes(router.LocaleEn)

	require.Len(t, routes, 1)
	assert.Equal(t, "Home", routes[0].Meta.Title)
	for _, child := range routes[0].Children {
		assert.False(t, child.Meta.Visible(), child.Path)
	}
}
