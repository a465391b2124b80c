package types

// LoginCredentials is a username/password pair. Equality is structural:
// both fields must match.
type LoginCredentials struct {
	Username string
	Password string
}

// Equal reports whether both username and password match.
func (c LoginCredentials) Equal(other LoginCredentials) bool {
	return c.Username == other.Username && c.Password == other.Password
}

// Auth is the body returned on successful sign-in. JWTToken is a
// placeholder carrying the plaintext password; real token issuance is a
// separate concern.
type Auth struct {
	Username string `json:"username"`
	JWTToken string `json:"jwtToken"`
}
