package skill

import "errors"

// Sentinel kinds for skill errors. Callers match with errors.Is.
var (
	// ErrValidation marks malformed input to a constructor or mutation.
	ErrValidation = errors.New("invalid skill input")
	// ErrUnknownKind marks a record whose type tag names no known variant.
	ErrUnknownKind = errors.New("unknown skill kind")
)
