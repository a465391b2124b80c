package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty csv path returns ErrCSVPathEmpty",
			config:  Config{ReportCSVPath: "", ListenAddr: ":8080"},
			wantErr: ErrCSVPathEmpty,
		},
		{
			name:    "empty listen address returns ErrListenAddrEmpty",
			config:  Config{ReportCSVPath: "reports.csv", ListenAddr: ""},
			wantErr: ErrListenAddrEmpty,
		},
		{
			name:   "valid config with admin credentials",
			config: Config{AdminCredentials: &LoginCredentials{Username: "admin", Password: "admin"}, ReportCSVPath: "reports.csv", ListenAddr: ":8080"},
		},
		{
			name:   "absent admin credentials are valid",
			config: Config{ReportCSVPath: "reports.csv", ListenAddr: ":8080"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
