package config

import "github.com/kelseyhightower/envconfig"

// EnvConfig is a DTO for environment-variable overrides, prefixed with
// LISTAFACIL (e.g. LISTAFACIL_DATABASE_PATH).
type EnvConfig struct {
	DatabasePath string `envconfig:"DATABASE_PATH"`
	DisplayName  string `envconfig:"DISPLAY_NAME"`
}

// parseEnv overlays Config with values from the environment. Unset
// variables leave the current value untouched.
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := envconfig.Process("listafacil", &ec); err != nil {
		panic(err)
	}

	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.DisplayName != "" {
		cfg.DisplayName = ec.DisplayName
	}
}
