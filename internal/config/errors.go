package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingSignKeys indicates that one or both token signing secrets
	// were not provided by any configuration source.
	ErrMissingSignKeys = errors.New("access and refresh token sign keys are required")
	// ErrIdenticalSignKeys indicates that the access and refresh signing
	// secrets are equal, which would defeat the access/refresh separation.
	ErrIdenticalSignKeys = errors.New("access and refresh token sign keys must differ")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
