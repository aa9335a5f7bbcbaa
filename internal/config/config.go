// Package config assembles runtime settings for the CLI from defaults, an
// optional JSON file, environment variables and command-line flags — later
// sources take precedence.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path of the local SQLite database file.
//   - DisplayName: optional name shown in the greeting.
type Config struct {
	DatabasePath string
	DisplayName  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "listafacil.db"
	c.DisplayName = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
