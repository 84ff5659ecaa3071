package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fahrplan/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fahrplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://transport.opendata.ch/v1", cfg.API.URL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.API.RetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.API.RetryDelay)
	assert.Equal(t, 60, cfg.API.RateLimitPerMin)
	assert.Equal(t, time.Minute, cfg.API.CacheTTL)
	assert.Equal(t, 128, cfg.API.CacheSize)
	assert.Zero(t, cfg.API.Limit)
	assert.Empty(t, cfg.API.Proxy)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "production", cfg.Logger.Mode)
	assert.Equal(t, "console", cfg.Logger.Encoding)
	assert.False(t, cfg.Logger.ColorEnabled)
	assert.Equal(t, "Europe/Zurich", cfg.Timezone)
	assert.False(t, cfg.Output.Full)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
api:
  url: http://localhost:9999/v1/
  timeout: 3s
  retry_attempts: 0
  limit: 4
logger:
  level: debug
timezone: UTC
output:
  full: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v1", cfg.API.URL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.API.RetryAttempts)
	assert.Equal(t, 4, cfg.API.Limit)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.True(t, cfg.Output.Full)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("FAHRPLAN_API_PROXY", "${TEST_FAHRPLAN_PROXY}")
	t.Setenv("TEST_FAHRPLAN_PROXY", "http://proxy.local:3128")
	t.Setenv("FAHRPLAN_TIMEZONE", "UTC")

	cfg, err := config.Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "http://proxy.local:3128", cfg.API.Proxy)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeConfig(t, "api:\n  timeout: 0s\n"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "api: [unclosed\n"))
	assert.Error(t, err)
}
