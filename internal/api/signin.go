package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/curbside/internal/rest"
	"github.com/mesh-intelligence/curbside/pkg/types"
)

// NewSignInEndpoint serves POST /sign-in: Basic-auth sign-in. The returned
// jwtToken is the plaintext password placeholder, not a real token.
func NewSignInEndpoint(admin *types.LoginCredentials, logger *zap.Logger) http.Handler {
	return rest.NewEndpoint(logger, rest.Post(signIn(admin)))
}

func signIn(admin *types.LoginCredentials) rest.HandlerFunc {
	return func(r *http.Request) (any, rest.Error) {
		auth, restErr := rest.VerifyCredentials(r, admin)
		if restErr != nil {
			return nil, restErr
		}
		return auth, nil
	}
}
