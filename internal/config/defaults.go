package config

import (
	"time"

	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

// Built-in defaults applied after every other configuration source.
const (
	DefaultHTTPAddress       = "0.0.0.0:8080"
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultDispatchURL       = "https://api.github.com/repos/InfraForgeLabs/DevOpsMind/dispatches"
	DefaultDispatchUserAgent = "devopsmind-relay"
	DefaultLogLevel          = "debug"
	DefaultRelayURL          = "http://localhost:8080"
	DefaultClientTimeout     = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Dispatch: Dispatch{
			URL:       DefaultDispatchURL,
			EventType: models.DefaultEventType,
			UserAgent: DefaultDispatchUserAgent,
		},
		Client: Client{
			RelayURL:       DefaultRelayURL,
			RequestTimeout: DefaultClientTimeout,
		},
	}
}
