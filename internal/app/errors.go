package app

import "errors"

// Sentinel kinds for store errors. Callers match with errors.Is.
var (
	// ErrDuplicateName marks an add whose name is already taken.
	ErrDuplicateName = errors.New("skill name already exists")
	// ErrNotFound marks a lookup miss.
	ErrNotFound = errors.New("skill not found")
	// ErrUnsupported marks an operation invoked on a skill kind that does
	// not support it.
	ErrUnsupported = errors.New("operation not supported for skill kind")
)
