package core

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the current grid dimensions.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidConfig reports a rejected dimension, interval or density.
	ErrInvalidConfig = errors.New("invalid config")
)
