package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound transport settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRoutesConfigs indicates a missing routes directory or
	// module suffix.
	ErrInvalidRoutesConfigs = errors.New("invalid routes configuration")
	// ErrInvalidStorageConfigs indicates an unknown secret backend or a
	// backend missing its connection settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid authentication policy settings
	// (for example, a non-positive signature window).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
