package config

import (
	"encoding/json"
	"os"

	"github.com/listafacil/listafacil/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config afterwards.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	DisplayName  string `json:"display_name"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, no JSON is loaded.
// Read or unmarshal errors panic (caller may recover); empty fields leave
// the current value untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DisplayName != "" {
		cfg.DisplayName = jc.DisplayName
	}
}
