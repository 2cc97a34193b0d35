package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, an empty relay address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDispatchConfigs indicates invalid dispatch settings
	// (for example, a relative endpoint URL or an empty event type).
	ErrInvalidDispatchConfigs = errors.New("invalid dispatch configuration")
	// ErrInvalidClientConfigs indicates invalid client settings
	// (for example, a malformed relay URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidAppConfigs indicates invalid process-wide settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrNegativeDuration indicates a negative timeout in any group.
	ErrNegativeDuration = errors.New("durations must not be negative")
)
