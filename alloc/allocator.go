package alloc

import (
	"fmt"
	"math"
	"unsafe"
)

// Allocator acquires and releases raw storage for values of type T and
// constructs/destroys values within that storage.
//
// Storage returned by Allocate has length n. Callers own the storage until
// they pass it back to Deallocate, together with the same n.
type Allocator[T any] interface {
	// Allocate returns storage for n uninitialized slots.
	Allocate(n int) ([]T, error)
	// Deallocate releases storage obtained from Allocate.
	Deallocate(mem []T, n int)
	// Construct brings the slot p to life as a copy of val.
	Construct(p *T, val T) error
	// Destroy ends the lifetime of the value at slot p.
	Destroy(p *T)
	// MaxSize is an upper bound on n for Allocate.
	MaxSize() int
}

// Heap is the default allocator. Its zero value is ready to use.
type Heap[T any] struct{}

var _ Allocator[int] = Heap[int]{}

// MaxSize returns the largest slot count addressable for T.
func (Heap[T]) MaxSize() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		return math.MaxInt
	}
	return math.MaxInt / sz
}

// Allocate returns zeroed storage for n slots.
func (h Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrLength, n)
	}
	if n > h.MaxSize() {
		return nil, fmt.Errorf("%w: %d > %d", ErrLength, n, h.MaxSize())
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate drops the storage. The garbage collector reclaims it once no
// other reference remains.
func (Heap[T]) Deallocate(mem []T, n int) {
	assert(len(mem) == n, "deallocate with mismatching length")
}

// Construct copies val into slot p.
func (Heap[T]) Construct(p *T, val T) error {
	*p = val
	return nil
}

// Destroy resets slot p to the zero value, releasing references it may hold.
func (Heap[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
