package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Panel health",
		Description: "Reports that the panel server is up and how many navigation routes it serves",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
