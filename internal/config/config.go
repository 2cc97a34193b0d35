// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the relay.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses and shutdown settings of the relay.
	Server Server `envPrefix:"SERVER_"`

	// Dispatch holds the repository-dispatch endpoint settings.
	Dispatch Dispatch `envPrefix:"DISPATCH_"`

	// Client holds settings of the submission client.
	Client Client `envPrefix:"CLIENT_"`

	// RepoPAT is the bearer credential presented to the dispatch endpoint.
	// Must be kept confidential.
	// Env: REPO_PAT
	RepoPAT string `env:"REPO_PAT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is the minimal zerolog level that is emitted
	// ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and lifecycle settings for the inbound transport.
type Server struct {
	// HTTPAddress is the TCP address on which the relay listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// MetricsAddress is the TCP address of the separate Prometheus listener.
	// Empty disables the listener.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown of the listeners.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Dispatch holds settings of the outbound repository-dispatch call.
type Dispatch struct {
	// URL is the repository-dispatch endpoint.
	// Env: DISPATCH_URL
	URL string `env:"URL"`

	// EventType is the event_type sent with every dispatch.
	// Env: DISPATCH_EVENT_TYPE
	EventType string `env:"EVENT_TYPE"`

	// UserAgent is sent in the User-Agent header of every dispatch.
	// Env: DISPATCH_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RequestTimeout bounds a single dispatch call. Zero waits indefinitely.
	// Env: DISPATCH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings of the submission client.
type Client struct {
	// RelayURL is the base URL of the relay the client submits to.
	// Env: CLIENT_RELAY_URL
	RelayURL string `env:"RELAY_URL"`

	// RequestTimeout bounds a single submission request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}
