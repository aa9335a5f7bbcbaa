package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "listafacil.db", cfg.DatabasePath)
	assert.Equal(t, "", cfg.DisplayName)
}

func TestLoadConfig_Flags(t *testing.T) {
	resetArgs(t, "-d", "custom.db", "-n", "Giovanna")

	cfg := LoadConfig()

	assert.Equal(t, "custom.db", cfg.DatabasePath)
	assert.Equal(t, "Giovanna", cfg.DisplayName)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"database_path":"json.db","display_name":"Ana"}`), 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, "Ana", cfg.DisplayName)
}

func TestLoadConfig_Env(t *testing.T) {
	resetArgs(t)
	t.Setenv("LISTAFACIL_DATABASE_PATH", "env.db")

	cfg := LoadConfig()

	assert.Equal(t, "env.db", cfg.DatabasePath)
}

func TestLoadConfig_FlagsOverrideJsonAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"json.db"}`), 0o600))

	resetArgs(t, "-c", path, "-d", "flag.db")
	t.Setenv("LISTAFACIL_DATABASE_PATH", "env.db")

	cfg := LoadConfig()

	assert.Equal(t, "flag.db", cfg.DatabasePath)
}
