package writer

import "errors"

var (
	// ErrWriteArtifact is wrapped by every error returned from [Write].
	ErrWriteArtifact = errors.New("error writing artifact")
	// ErrEmptyPath indicates that no output path was provided.
	ErrEmptyPath = errors.New("empty output path")
)
