package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidEngineConfigs indicates invalid sync engine endpoint settings
	// (for example, missing address or request timeout).
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidTimerConfigs indicates invalid focus timer settings
	// (for example, negative durations).
	ErrInvalidTimerConfigs = errors.New("invalid timer configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, zero poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
