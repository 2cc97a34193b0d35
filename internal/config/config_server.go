package config

import (
	"fmt"
	"time"
)

// DispatchConfig is the dispatcher's view of the configuration: endpoint
// settings plus the bearer credential.
type DispatchConfig struct {
	// URL is the repository-dispatch endpoint.
	URL string
	// Token is the bearer credential. An empty token is allowed at startup;
	// every dispatch then fails softly.
	Token string
	// EventType is the event_type of every dispatched event.
	EventType string
	// UserAgent is sent in the User-Agent header.
	UserAgent string
	// RequestTimeout bounds a single dispatch; zero waits indefinitely.
	RequestTimeout time.Duration
}

// ServerConfig is the relay server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains process-wide settings.
	App App
	// Server contains listener settings.
	Server Server
	// Dispatch contains the outbound dispatch settings.
	Dispatch DispatchConfig
}

// GetServerConfig loads env, the given command-line args, the optional JSON
// file and defaults, maps them to a [ServerConfig] and validates it.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields of cfg relevant to the relay server.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Dispatch: DispatchConfig{
			URL:            cfg.Dispatch.URL,
			Token:          cfg.RepoPAT,
			EventType:      cfg.Dispatch.EventType,
			UserAgent:      cfg.Dispatch.UserAgent,
			RequestTimeout: cfg.Dispatch.RequestTimeout,
		},
	}
}
