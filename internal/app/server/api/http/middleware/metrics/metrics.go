package metrics

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	pkgmetrics "chipadmin/pkg/metrics"
)

// Metrics middleware считает входящие запросы и их длительность
type Metrics struct {
	manager *pkgmetrics.Manager
}

func New(manager *pkgmetrics.Manager) *Metrics {
	return &Metrics{manager: manager}
}

func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		// Шаблон пути операции, а не фактический URL, чтобы не плодить метки
		endpoint := ctx.URL().Path
		if op := ctx.Operation(); op != nil {
			endpoint = op.Path
		}

		m.manager.ObserveHTTPRequest(endpoint, ctx.Method(), ctx.Status(), time.Since(start))
	}
}
