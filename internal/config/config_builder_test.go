package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier source keeps its
// non-zero fields and later sources only fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:2222", MetricsAddress: "localhost:2112"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:2112", cfg.Server.MetricsAddress)
}

func TestBuild_RejectsNegativeDuration(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Dispatch: Dispatch{RequestTimeout: -time.Second}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrNegativeDuration)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithDefaults_FillsEverything(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultDispatchURL, cfg.Dispatch.URL)
	assert.Equal(t, "player_submission", cfg.Dispatch.EventType)
	assert.Equal(t, "devopsmind-relay", cfg.Dispatch.UserAgent)
	assert.Zero(t, cfg.Dispatch.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultRelayURL, cfg.Client.RelayURL)
	assert.Equal(t, DefaultClientTimeout, cfg.Client.RequestTimeout)
	assert.Empty(t, cfg.RepoPAT)
}

func TestWithFlags_InvalidFlagCollectsError(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-unknown"}).build()

	require.Error(t, err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server":   map[string]any{"metrics_address": "localhost:2112"},
		"repo_pat": "ghp_json",
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:2112", cfg.Server.MetricsAddress)
	assert.Equal(t, "ghp_json", cfg.RepoPAT)
}

func TestWithJSON_MissingFileCollectsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	_, err := b.withJSON().build()

	require.Error(t, err)
}

// ── GetServerConfig / GetClientConfig ─────────────────────────────────────────

func TestGetServerConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetServerConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.MetricsAddress)
	assert.Equal(t, DefaultDispatchURL, cfg.Dispatch.URL)
	assert.Equal(t, "player_submission", cfg.Dispatch.EventType)
	assert.Equal(t, "devopsmind-relay", cfg.Dispatch.UserAgent)
	assert.Empty(t, cfg.Dispatch.Token)
}

func TestGetServerConfig_EnvBeatsFlagsBeatsJSON(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"repo_pat": "ghp_json",
		"dispatch": map[string]any{"user_agent": "json-agent", "url": "https://json.test/d"},
		"app":      map[string]any{"log_level": "error"},
	})
	setEnvVars(t, map[string]string{
		"REPO_PAT": "ghp_env",
		"CONFIG":   path,
	})

	cfg, err := GetServerConfig([]string{
		"-repo-pat", "ghp_flag",
		"-dispatch-url", "https://flag.test/d",
	})

	require.NoError(t, err)
	assert.Equal(t, "ghp_env", cfg.Dispatch.Token)
	assert.Equal(t, "https://flag.test/d", cfg.Dispatch.URL)
	assert.Equal(t, "json-agent", cfg.Dispatch.UserAgent)
	assert.Equal(t, "error", cfg.App.LogLevel)
}

func TestGetServerConfig_InvalidDispatchURL(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"DISPATCH_URL": "/relative/path"})

	_, err := GetServerConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidDispatchConfigs)
}

func TestGetServerConfig_InvalidLogLevel(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"APP_LOG_LEVEL": "chatty"})

	_, err := GetServerConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, DefaultRelayURL, cfg.Client.RelayURL)
	assert.Equal(t, DefaultClientTimeout, cfg.Client.RequestTimeout)
}

func TestGetClientConfig_InvalidRelayURL(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"CLIENT_RELAY_URL": "relay without scheme"})

	_, err := GetClientConfig()

	assert.ErrorIs(t, err, ErrInvalidClientConfigs)
}

func TestNewServerConfig_MapsToken(t *testing.T) {
	cfg := NewServerConfig(&StructuredConfig{
		RepoPAT:  "ghp_mapped",
		Dispatch: Dispatch{URL: "https://x.test", RequestTimeout: time.Second},
	})

	assert.Equal(t, "ghp_mapped", cfg.Dispatch.Token)
	assert.Equal(t, "https://x.test", cfg.Dispatch.URL)
	assert.Equal(t, time.Second, cfg.Dispatch.RequestTimeout)
}
