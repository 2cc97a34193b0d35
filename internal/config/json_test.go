package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": { "log_level": "info" },
		"server": {
			"http_address": "localhost:8080",
			"metrics_address": "localhost:2112",
			"shutdown_timeout": "5s"
		},
		"dispatch": {
			"url": "https://example.test/dispatches",
			"event_type": "custom_event",
			"user_agent": "relay-json",
			"request_timeout": 30000000000
		},
		"client": {
			"relay_url": "http://relay.test",
			"request_timeout": "15s"
		},
		"repo_pat": "ghp_json"
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:2112", cfg.Server.MetricsAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://example.test/dispatches", cfg.Dispatch.URL)
	assert.Equal(t, "custom_event", cfg.Dispatch.EventType)
	assert.Equal(t, "relay-json", cfg.Dispatch.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Dispatch.RequestTimeout)
	assert.Equal(t, "http://relay.test", cfg.Client.RelayURL)
	assert.Equal(t, 15*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, "ghp_json", cfg.RepoPAT)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{not json`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"shutdown_timeout": "soon"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	got, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(got))
}
