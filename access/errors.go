package access

import "errors"

var (
	// ErrUnsupported is returned for values that have no positional members
	ErrUnsupported = errors.New("unsupported value")
	// ErrOutOfRange is returned for a position outside of the value
	ErrOutOfRange = errors.New("position out of range")
)
