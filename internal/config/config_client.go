package config

import (
	"fmt"
)

// ClientConfig is the submission client configuration assembled from
// [StructuredConfig]. The client has no flag source of its own: its
// command-line flags are owned by the CLI and override these values.
type ClientConfig struct {
	// App contains process-wide settings.
	App App
	// Client contains the relay address and request timeout.
	Client Client
}

// GetClientConfig builds and validates a client-specific config view from
// env, the optional JSON file and defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:    cfg.App,
		Client: cfg.Client,
	}

	return clientCfg, clientCfg.Validate()
}
