package types

// Defaults applied when the environment leaves a value unset.
const (
	DefaultReportCSVPath = "reports.csv"
	DefaultListenAddr    = ":8080"
)

// Config is the process-wide configuration snapshot. It is resolved once at
// startup and never mutated afterwards.
type Config struct {
	// AdminCredentials authorizes sign-in and report retrieval. When nil,
	// every sign-in fails.
	AdminCredentials *LoginCredentials

	// ReportCSVPath is the table file holding persisted reports.
	ReportCSVPath string

	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string

	// Development switches the logger to its development configuration.
	Development bool
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure. Absent admin credentials are valid;
// they only disable sign-in.
func (c Config) Validate() error {
	if c.ReportCSVPath == "" {
		return ErrCSVPathEmpty
	}
	if c.ListenAddr == "" {
		return ErrListenAddrEmpty
	}
	return nil
}
