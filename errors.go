package treewalk

import "errors"

var (
	// ErrNotApplicable is returned when the input is not a composite, or a search value is empty.
	ErrNotApplicable = errors.New("not applicable")
	// ErrNotFound is returned when a search matched no property.
	ErrNotFound = errors.New("not found")
)
