package bst

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bst: invalid configuration")
	// ErrInvariant signals a violated structural invariant, reported by Check.
	ErrInvariant = errors.New("bst: invariant violated")
)
