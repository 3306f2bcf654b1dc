package routes

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getRoutesOp() huma.Operation {
	return huma.Operation{
		OperationID: "get-async-routes",
		Method:      http.MethodGet,
		Path:        "/api/v1/routes",
		Summary:     "Navigation tree",
		Description: "Returns the panel navigation tree with menu visibility resolved from HIDE_HOME",
		Tags:        []string{"routes"},
		Middlewares: h.middleware,
	}
}
