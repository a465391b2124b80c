// Package config resolves the process-wide configuration snapshot from the
// environment using Viper. The snapshot is loaded once at startup and never
// mutated afterwards.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/curbside/pkg/types"
)

// Environment variable names.
const (
	EnvAdminUsername = "ADMIN_USERNAME"
	EnvAdminPassword = "ADMIN_PASSWORD"
	EnvReportCSVPath = "REPORT_CSV_PATH"
	EnvListenAddr    = "CURBSIDE_ADDR"
	EnvEnvironment   = "CURBSIDE_ENV"
)

// Viper config keys.
const (
	cfgKeyAdminUsername = "admin_username"
	cfgKeyAdminPassword = "admin_password"
	cfgKeyCSVPath       = "report_csv_path"
	cfgKeyListenAddr    = "listen_addr"
	cfgKeyEnvironment   = "environment"
)

// developmentEnv is the CURBSIDE_ENV value that enables development mode.
const developmentEnv = "development"

// Load resolves the configuration snapshot from the environment. Sign-in is
// only possible when both admin variables are set; either one missing
// leaves AdminCredentials nil.
func Load() (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyCSVPath, types.DefaultReportCSVPath)
	v.SetDefault(cfgKeyListenAddr, types.DefaultListenAddr)

	bindings := map[string]string{
		cfgKeyAdminUsername: EnvAdminUsername,
		cfgKeyAdminPassword: EnvAdminPassword,
		cfgKeyCSVPath:       EnvReportCSVPath,
		cfgKeyListenAddr:    EnvListenAddr,
		cfgKeyEnvironment:   EnvEnvironment,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return types.Config{}, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	cfg := types.Config{
		ReportCSVPath: v.GetString(cfgKeyCSVPath),
		ListenAddr:    v.GetString(cfgKeyListenAddr),
		Development:   v.GetString(cfgKeyEnvironment) == developmentEnv,
	}

	username := v.GetString(cfgKeyAdminUsername)
	password := v.GetString(cfgKeyAdminPassword)
	if username != "" && password != "" {
		cfg.AdminCredentials = &types.LoginCredentials{Username: username, Password: password}
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
