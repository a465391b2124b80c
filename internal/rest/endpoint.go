package rest

import (
	"net/http"

	"go.uber.org/zap"
)

// HandlerFunc handles one request and returns either a response value or a
// rest Error. Handlers never write to the ResponseWriter themselves; the
// endpoint funnels every result through the responder.
type HandlerFunc func(r *http.Request) (any, Error)

// Method pairs an HTTP method name with its handler. Endpoints keep methods
// in a slice so the Allow header and allowedMethods list preserve
// declaration order.
type Method struct {
	Name   string
	Handle HandlerFunc
}

// Get declares a handler for GET requests.
func Get(h HandlerFunc) Method {
	return Method{Name: http.MethodGet, Handle: h}
}

// Post declares a handler for POST requests.
func Post(h HandlerFunc) Method {
	return Method{Name: http.MethodPost, Handle: h}
}

// Endpoint dispatches requests to the handler registered for their method
// and writes the uniform response. A request whose method has no handler
// receives a MethodNotAllowed error naming the declared methods.
type Endpoint struct {
	methods []Method
	logger  *zap.Logger
}

// NewEndpoint builds an endpoint from the given method handlers. The
// declaration order of methods is preserved in error responses.
func NewEndpoint(logger *zap.Logger, methods ...Method) *Endpoint {
	return &Endpoint{methods: methods, logger: logger}
}

// ServeHTTP implements http.Handler. It invokes at most one handler and
// terminates in exactly one response write.
func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, m := range e.methods {
		if m.Name == r.Method {
			value, err := m.Handle(r)
			respond(w, e.logger, value, err)
			return
		}
	}
	respond(w, e.logger, nil, methodNotAllowed(e.allowedMethods(), r.Method))
}

func (e *Endpoint) allowedMethods() []string {
	allowed := make([]string, len(e.methods))
	for i, m := range e.methods {
		allowed[i] = m.Name
	}
	return allowed
}
