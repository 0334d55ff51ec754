package serializer

import "errors"

var (
	// ErrEmptyGlobal is returned by [Render] when no assignment target is given.
	ErrEmptyGlobal = errors.New("empty global identifier")
	// ErrEncodeMapping wraps JSON encoding failures of the config mapping.
	ErrEncodeMapping = errors.New("error encoding config mapping")
)
