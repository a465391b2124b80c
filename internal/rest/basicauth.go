package rest

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/mesh-intelligence/curbside/pkg/types"
)

// basicScheme is the only authentication scheme the service accepts.
const basicScheme = "Basic"

// Authentication failure reasons. They exist for tests and logging only;
// the client always receives the same generic Unauthorized response so the
// specific reason cannot be used as a verification oracle.
var (
	ErrNoAuthorizationHeader = errors.New("no authorization header")
	ErrWrongScheme           = errors.New("authorization scheme is not Basic")
	ErrMissingCredentials    = errors.New("missing username or password")
)

// FailedAuthentication returns the single Unauthorized error used for every
// authentication failure.
func FailedAuthentication() *Unauthorized {
	return &Unauthorized{Challenge: basicScheme, Message: "Invalid username or password"}
}

// ExtractCredentials parses the Basic Authorization header of r into a
// credential pair. The returned error is one of the reasons above.
func ExtractCredentials(r *http.Request) (types.LoginCredentials, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return types.LoginCredentials{}, ErrNoAuthorizationHeader
	}

	scheme, payload, _ := strings.Cut(header, " ")
	if scheme != basicScheme {
		return types.LoginCredentials{}, ErrWrongScheme
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return types.LoginCredentials{}, ErrMissingCredentials
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found || username == "" || password == "" {
		return types.LoginCredentials{}, ErrMissingCredentials
	}

	return types.LoginCredentials{Username: username, Password: password}, nil
}

// VerifyCredentials extracts Basic credentials from r and checks them
// structurally against the configured admin credentials. Any failure,
// including admin being nil, yields the generic Unauthorized error.
func VerifyCredentials(r *http.Request, admin *types.LoginCredentials) (types.Auth, Error) {
	creds, err := ExtractCredentials(r)
	if err != nil {
		return types.Auth{}, FailedAuthentication()
	}
	if admin == nil || !creds.Equal(*admin) {
		return types.Auth{}, FailedAuthentication()
	}
	return types.Auth{Username: creds.Username, JWTToken: creds.Password}, nil
}
