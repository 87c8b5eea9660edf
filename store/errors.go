package store

import "errors"

var (
	// ErrInvalidCapacity is returned when a store is created or resized below one entry.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrInvalidValue is returned by Set when the validator rejects a value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOnEvictSet is returned when more than one eviction callback is configured.
	ErrOnEvictSet = errors.New("onEvict callback already set")
)
