package repository

import "errors"

// Sentinel kinds for persistence errors.
var (
	// ErrCorruptData marks stored data that fails schema validation on load.
	ErrCorruptData = errors.New("corrupt skill data")
	// ErrPersistence marks an I/O failure while reading or writing the store.
	ErrPersistence = errors.New("persistence failed")
)
