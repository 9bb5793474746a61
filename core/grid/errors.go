package grid

import "errors"

// ErrNotFound is returned when an operation references an unknown entity id.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input is rejected before any state change.
var ErrValidation = errors.New("invalid input")
