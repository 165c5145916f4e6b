package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token or demo account settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMediaConfigs indicates missing media host credentials or
	// non-positive upload limits.
	ErrInvalidMediaConfigs = errors.New("invalid media configuration")
	// ErrInvalidRateLimitConfigs indicates non-positive rate limit values.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
