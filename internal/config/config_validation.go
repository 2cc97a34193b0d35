// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks invariants that hold for every view of the merged
// [StructuredConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.ShutdownTimeout < 0 || cfg.Dispatch.RequestTimeout < 0 || cfg.Client.RequestTimeout < 0 {
		return ErrNegativeDuration
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if !isAbsoluteHTTPURL(cfg.Dispatch.URL) {
		return fmt.Errorf("%w: url %q", ErrInvalidDispatchConfigs, cfg.Dispatch.URL)
	}

	if cfg.Dispatch.EventType == "" || cfg.Dispatch.UserAgent == "" {
		return ErrInvalidDispatchConfigs
	}

	return validateLogLevel(cfg.App.LogLevel)
}

// Validate checks the client view; the CLI calls it again after applying
// its own flag overrides.
func (cfg *ClientConfig) Validate() error {
	if !isAbsoluteHTTPURL(cfg.Client.RelayURL) {
		return fmt.Errorf("%w: relay url %q", ErrInvalidClientConfigs, cfg.Client.RelayURL)
	}

	if cfg.Client.RequestTimeout < 0 {
		return ErrNegativeDuration
	}

	return validateLogLevel(cfg.App.LogLevel)
}

func validateLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	return nil
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
