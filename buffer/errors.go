package buffer

import "errors"

var (
	// ErrInvalidConfig signals an invalid buffer configuration.
	ErrInvalidConfig = errors.New("buffer: invalid configuration")
	// ErrOutOfRange signals a checked access beyond the live elements.
	ErrOutOfRange = errors.New("buffer: index out of range")
	// ErrLength signals a requested size beyond the allocator's maximum.
	ErrLength = errors.New("buffer: length exceeds maximum size")
)
