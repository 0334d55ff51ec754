package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot drive a generator run.
var (
	// ErrInvalidOutputConfigs indicates an empty artifact output path.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidGlobalConfigs indicates an assignment target that is not a
	// dotted JavaScript identifier path.
	ErrInvalidGlobalConfigs = errors.New("invalid global identifier configuration")
	// ErrInvalidNamesConfigs indicates an empty, duplicated or malformed
	// recognized-name list.
	ErrInvalidNamesConfigs = errors.New("invalid recognized names configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnexpectedArguments is returned when positional arguments are given.
	ErrUnexpectedArguments = errors.New("unexpected positional arguments")
)
