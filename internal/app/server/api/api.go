// GET /api/v1/health  # Проверка доступности
// GET /api/v1/routes  # Навигационное дерево панели (?locale=)
// GET /metrics        # Метрики Prometheus

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"chipadmin/internal/app/server/api/http/health"
	"chipadmin/internal/app/server/api/http/middleware"
	"chipadmin/internal/app/server/api/http/middleware/logger"
	metricsMW "chipadmin/internal/app/server/api/http/middleware/metrics"
	"chipadmin/internal/app/server/api/http/routes"
	"chipadmin/internal/app/server/config"
	"chipadmin/pkg/metrics"
)

type Handlers struct {
	Health *health.Handler
	Routes *routes.Handler
}

// New создает *chi.Mux со всеми операциями, зарегистрированными через huma.Register
func New(cfg *config.Config, log *slog.Logger, registry *prometheus.Registry) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("ChipAdmin Panel API", "1.0.0")
	API := humachi.New(mux, humaConfig)

	manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))

	h := handlers(cfg, log, manager)
	h.Health.SetupRoutes(API)
	h.Routes.SetupRoutes(API)

	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return mux
}

func handlers(cfg *config.Config, log *slog.Logger, manager *metrics.Manager) *Handlers {
	loggerMW := logger.New(log)
	metricsMiddleware := metricsMW.New(manager)
	middlewares := middleware.NewContainer()

	healthHandler := health.NewHandler(log, middlewares.Add(loggerMW.Middleware()).GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), metricsMiddleware.Middleware())
	routesHandler := routes.NewHandler(cfg.Panel.HideHome, cfg.Panel.Locale, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Routes: routesHandler,
	}
}
