package alloc

import "errors"

var (
	// ErrAllocation signals that raw storage could not be acquired.
	ErrAllocation = errors.New("alloc: allocation failed")
	// ErrLength signals a request for more slots than the allocator can address.
	ErrLength = errors.New("alloc: requested length exceeds maximum size")
	// ErrConstruct signals that a value could not be constructed in place.
	ErrConstruct = errors.New("alloc: construction failed")
)
