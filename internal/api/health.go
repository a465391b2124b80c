package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/curbside/internal/rest"
)

// NewHealthEndpoint serves GET /healthz for deployment probes.
func NewHealthEndpoint(logger *zap.Logger) http.Handler {
	return rest.NewEndpoint(logger, rest.Get(func(r *http.Request) (any, rest.Error) {
		return map[string]string{"status": "ok"}, nil
	}))
}
