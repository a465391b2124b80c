package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEndpointDispatchesByMethod(t *testing.T) {
	var invoked int
	endpoint := NewEndpoint(zap.NewNop(),
		Post(func(r *http.Request) (any, Error) {
			invoked++
			return map[string]string{"ok": "true"}, nil
		}),
	)

	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, invoked)
	assert.JSONEq(t, `{"ok":"true"}`, rec.Body.String())
}

func TestEndpointRejectsUndeclaredMethod(t *testing.T) {
	endpoint := NewEndpoint(zap.NewNop(),
		Post(func(r *http.Request) (any, Error) {
			t.Fatal("handler must not be invoked for an undeclared method")
			return nil, nil
		}),
	)

	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
	assert.JSONEq(t, `{
		"type": "MethodNotAllowedError",
		"allowedMethods": ["POST"],
		"message": "Method \"GET\" not allowed"
	}`, rec.Body.String())
}

func TestEndpointPreservesDeclarationOrder(t *testing.T) {
	noop := func(r *http.Request) (any, Error) { return nil, nil }
	endpoint := NewEndpoint(zap.NewNop(),
		Post(noop),
		Get(noop),
		Method{Name: http.MethodDelete, Handle: noop},
	)

	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/report", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST, GET, DELETE", rec.Header().Get("Allow"))

	var body struct {
		AllowedMethods []string `json:"allowedMethods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"POST", "GET", "DELETE"}, body.AllowedMethods)
}

func TestEndpointGenericMessageForEmptyMethod(t *testing.T) {
	endpoint := NewEndpoint(zap.NewNop(),
		Post(func(r *http.Request) (any, Error) { return nil, nil }),
	)

	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, &http.Request{Method: "", Header: http.Header{}})

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Method not allowed", body.Message)
}

func TestEndpointForwardsHandlerError(t *testing.T) {
	endpoint := NewEndpoint(zap.NewNop(),
		Post(func(r *http.Request) (any, Error) {
			return nil, &BadRequest{Errors: []string{"description must not be empty"}}
		}),
	)

	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/report", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"type": "BadRequestError",
		"errors": ["description must not be empty"]
	}`, rec.Body.String())
}
