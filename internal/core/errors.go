package core

import "errors"

var (
	// ErrOutOfRange reports a coordinate outside the grid bounds.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvariant reports cell storage that does not match the grid dimensions.
	ErrInvariant = errors.New("grid invariant violated")
)
