package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"chipadmin/internal/router"
	"chipadmin/internal/router/modules"
)

const serviceName = "chipadmin-panel"

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
	routes     int
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
		routes:     len(router.Flatten(modules.All("", nil))),
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status:  "OK",
			Service: serviceName,
			Routes:  h.routes,
		},
	}, nil
}
