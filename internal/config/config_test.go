package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://api.spclient.example.com", cfg.APIBaseURL)
	assert.Equal(t, "wss://dealer.spclient.example.com/connect", cfg.RealtimeURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.AccessToken)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TUNE_API_BASE_URL", "https://media.local")
	t.Setenv("TUNE_ACCESS_TOKEN", "secret-token")
	t.Setenv("TUNE_HTTP_TIMEOUT", "10s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://media.local", cfg.APIBaseURL)
	assert.Equal(t, "secret-token", cfg.AccessToken)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api-base-url: https://from-file.local\nlog-level: debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-file.local", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api-base-url: https://from-file.local\n"), 0o600))
	t.Setenv("TUNE_API_BASE_URL", "https://from-env.local")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.local", cfg.APIBaseURL)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("TUNE_HTTP_TIMEOUT", "not-a-duration")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
