package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"chipadmin/internal/router"
	"chipadmin/internal/router/modules"
)

type Handler struct {
	log           *slog.Logger
	middleware    huma.Middlewares
	hideHome      string
	defaultLocale string
}

func NewHandler(hideHome, defaultLocale string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:           log,
		middleware:    middleware,
		hideHome:      hideHome,
		defaultLocale: defaultLocale,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getRoutesOp(), h.getRoutes)
}

func (h *Handler) getRoutes(_ context.Context, input *Input) (*Output, error) {
	locale := input.Locale
	if locale == "" {
		locale = h.defaultLocale
	}

	h.log.Debug("routes requested", slog.String("locale", locale))

	return &Output{
		Body: Response{
			Success: true,
			Data:    modules.All(h.hideHome, router.Locale(locale)),
		},
	}, nil
}
