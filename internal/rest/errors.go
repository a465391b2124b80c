// Package rest implements the shared request-handling pipeline: the closed
// error taxonomy, the uniform responder, the method dispatcher, and
// Basic-auth credential handling.
package rest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is the closed set of wire-facing error variants. Every failure a
// handler reports is one of the four types below; each serializes with a
// stable "type" tag and maps to exactly one status/header/body triple in
// the responder.
type Error interface {
	error
	restError()
}

// BadRequest reports invalid client input. Errors holds human-readable
// validation messages.
type BadRequest struct {
	Errors []string
}

func (e *BadRequest) Error() string {
	return strings.Join(e.Errors, "; ")
}

func (e *BadRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string   `json:"type"`
		Errors []string `json:"errors"`
	}{"BadRequestError", e.Errors})
}

func (e *BadRequest) restError() {}

// Unauthorized reports failed authentication. Challenge is echoed in the
// WWW-Authenticate response header.
type Unauthorized struct {
	Challenge string
	Message   string
}

func (e *Unauthorized) Error() string {
	return e.Message
}

func (e *Unauthorized) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string `json:"type"`
		Challenge string `json:"challenge"`
		Message   string `json:"message"`
	}{"UnauthorizedError", e.Challenge, e.Message})
}

func (e *Unauthorized) restError() {}

// MethodNotAllowed reports a request method with no registered handler.
// AllowedMethods lists the declared methods in declaration order.
type MethodNotAllowed struct {
	AllowedMethods []string
	Message        string
}

func (e *MethodNotAllowed) Error() string {
	return e.Message
}

func (e *MethodNotAllowed) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type           string   `json:"type"`
		AllowedMethods []string `json:"allowedMethods"`
		Message        string   `json:"message"`
	}{"MethodNotAllowedError", e.AllowedMethods, e.Message})
}

func (e *MethodNotAllowed) restError() {}

// InternalServerError reports a server-side failure. Message is a stable,
// client-safe summary; the underlying cause is logged, never exposed.
type InternalServerError struct {
	Message string
}

func (e *InternalServerError) Error() string {
	return e.Message
}

func (e *InternalServerError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}{"InternalServerError", e.Message})
}

func (e *InternalServerError) restError() {}

// methodNotAllowed builds the dispatcher's miss response. The message quotes
// the literal incoming method, or falls back to a generic message when the
// method string is empty.
func methodNotAllowed(allowed []string, method string) *MethodNotAllowed {
	message := "Method not allowed"
	if method != "" {
		message = fmt.Sprintf("Method %q not allowed", method)
	}
	return &MethodNotAllowed{AllowedMethods: allowed, Message: message}
}
