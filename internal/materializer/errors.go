package materializer

import "errors"

var (
	// ErrNilEnvironment is returned by [New] without an environment provider.
	ErrNilEnvironment = errors.New("environment provider is nil")
	// ErrNilLogger is returned by [New] without a logger.
	ErrNilLogger = errors.New("logger is nil")
	// ErrNoRecognizedNames is returned by [New] when no names are configured.
	ErrNoRecognizedNames = errors.New("no recognized names configured")
)
