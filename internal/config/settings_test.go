package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, "text", s.Log.Format)
	assert.Equal(t, ":8080", s.Server.Addr)
	assert.Equal(t, 10*time.Second, s.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, s.Server.WriteTimeout)
	assert.Equal(t, "console-lite", s.Output.Format)
	assert.Equal(t, "lei", s.Output.Currency)
	assert.Equal(t, 60, s.Engine.SolverIterations)
	assert.Equal(t, 0, s.Engine.Concurrency)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
log:
  level: debug
  format: json
server:
  addr: "127.0.0.1:9000"
  read_timeout: 2s
output:
  format: csv
  currency: EUR
engine:
  solver_iterations: 80
  concurrency: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, "127.0.0.1:9000", s.Server.Addr)
	assert.Equal(t, 2*time.Second, s.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, s.Server.WriteTimeout, "unset keys keep their defaults")
	assert.Equal(t, "csv", s.Output.Format)
	assert.Equal(t, "EUR", s.Output.Currency)
	assert.Equal(t, 80, s.Engine.SolverIterations)
	assert.Equal(t, 4, s.Engine.Concurrency)
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WEALTHCOACH_LOG_LEVEL", "warn")
	t.Setenv("WEALTHCOACH_SERVER_ADDR", ":9999")
	t.Setenv("WEALTHCOACH_ENGINE_SOLVER_ITERATIONS", "40")

	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, ":9999", s.Server.Addr)
	assert.Equal(t, 40, s.Engine.SolverIterations)
}

func TestLoadSettingsMissingExplicitFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading settings file")
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	s.Log.Format = "xml"
	assert.Error(t, s.Validate())

	s = DefaultSettings()
	s.Engine.SolverIterations = 0
	assert.Error(t, s.Validate())

	s = DefaultSettings()
	s.Engine.Concurrency = -1
	assert.Error(t, s.Validate())
}
