package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// respond maps a handler result to a single HTTP response write. A nil
// restErr writes the value as JSON with status 200; each error variant maps
// to its status and headers. Exactly one write happens per invocation.
func respond(w http.ResponseWriter, logger *zap.Logger, value any, restErr Error) {
	w.Header().Set("Content-Type", "application/json")

	status := http.StatusOK
	body := value

	switch e := restErr.(type) {
	case nil:
	case *BadRequest:
		status, body = http.StatusBadRequest, e
	case *Unauthorized:
		w.Header().Set("WWW-Authenticate", e.Challenge)
		status, body = http.StatusUnauthorized, e
	case *MethodNotAllowed:
		w.Header().Set("Allow", strings.Join(e.AllowedMethods, ", "))
		status, body = http.StatusMethodNotAllowed, e
	case *InternalServerError:
		status, body = http.StatusInternalServerError, e
	default:
		// The taxonomy is closed; an unknown variant is a programming
		// error but must still produce a stable client shape.
		logger.Error("unknown rest error variant", zap.Error(restErr))
		status, body = http.StatusInternalServerError, &InternalServerError{Message: "Internal server error"}
	}

	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("encoding response body", zap.Error(err))
	}
}
