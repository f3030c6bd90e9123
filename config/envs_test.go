package config_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := config.FromLookup(mapLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := config.FromLookup(mapLookup(map[string]string{
		config.EnvHost:        "127.0.0.1",
		config.EnvPort:        "9090",
		config.EnvBaseURL:     "/grid",
		config.EnvMaxCells:    "100",
		config.EnvDefaultRows: "11",
		config.EnvDefaultCols: "21",
		config.EnvGinMode:     "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Host:        "127.0.0.1",
		Port:        9090,
		BaseURL:     "/grid",
		MaxCells:    100,
		DefaultRows: 11,
		DefaultCols: 21,
		GinMode:     "debug",
	}, cfg)
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"PortNotInt":   {config.EnvPort: "http"},
		"PortTooLarge": {config.EnvPort: "70000"},
		"ZeroCells":    {config.EnvMaxCells: "0"},
		"NegativeRows": {config.EnvDefaultRows: "-3"},
		"ColsNotInt":   {config.EnvDefaultCols: "many"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.FromLookup(mapLookup(env))
			assert.ErrorIs(t, err, config.ErrInvalidValue)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GRIDPATH_PORT=7070\nGRIDPATH_MAX_CELLS=42\n"), 0o600))

	t.Setenv(config.EnvPort, "")
	require.NoError(t, os.Unsetenv(config.EnvPort))
	t.Setenv(config.EnvMaxCells, "99")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 99, cfg.MaxCells, "variables already set win over the file")
}

func TestLoad_MissingFileIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Positive(t, cfg.Port)
	assert.Contains(t, buf.String(), config.LogInfo+" .env file not found")
}
