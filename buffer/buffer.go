package buffer

import (
	"fmt"

	"github.com/npillmayer/containers/alloc"
)

// Buffer is a contiguous sequence of elements of type T.
//
// The storage block is mem, with len(mem) being the capacity. Elements in
// mem[:finish] are live, mem[finish:] is uninitialized.
//
// Buffer{} is a valid, empty buffer. A Buffer must not be copied by value;
// use Clone or CopyFrom.
type Buffer[T any] struct {
	alloc  alloc.Allocator[T]
	mem    []T
	finish int
}

// New creates an empty buffer with validated configuration.
func New[T any](cfg Config[T]) (*Buffer[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Buffer[T]{alloc: cfg.Allocator}, nil
}

func (b *Buffer[T]) allocator() alloc.Allocator[T] {
	if b.alloc == nil {
		b.alloc = alloc.Heap[T]{}
	}
	return b.alloc
}

// Config returns the effective configuration.
func (b *Buffer[T]) Config() Config[T] {
	return Config[T]{Allocator: b.allocator()}
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.finish
}

// Cap returns the number of slots in the storage block.
func (b *Buffer[T]) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.mem)
}

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.Len() == 0
}

// MaxSize returns the maximum number of elements the allocator can provide.
func (b *Buffer[T]) MaxSize() int {
	return b.allocator().MaxSize()
}

// Data returns the live elements. The slice aliases the buffer's storage and
// is invalidated by any operation changing the buffer's length or capacity.
func (b *Buffer[T]) Data() []T {
	return b.mem[:b.finish]
}

// --- Element access --------------------------------------------------------

// At returns the element at index i, or ErrOutOfRange.
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= b.finish {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, b.finish)
	}
	return b.mem[i], nil
}

// Index returns a pointer to the element at index i. It does not check i
// against the live range beyond what slice indexing does.
func (b *Buffer[T]) Index(i int) *T {
	return &b.mem[:b.finish][i]
}

// Front returns a pointer to the first element. Unchecked.
func (b *Buffer[T]) Front() *T {
	return b.Index(0)
}

// Back returns a pointer to the last element. Unchecked.
func (b *Buffer[T]) Back() *T {
	return b.Index(b.finish - 1)
}

// --- Storage helpers -------------------------------------------------------

// construct brings dst[i] to life as val(i), for every i. If a construction
// fails, the slots constructed so far are destroyed again.
func (b *Buffer[T]) construct(dst []T, val func(i int) T) error {
	a := b.allocator()
	for i := range dst {
		if err := a.Construct(&dst[i], val(i)); err != nil {
			b.destroyRange(dst[:i])
			return err
		}
	}
	return nil
}

// constructCopy constructs dst from the elements of src.
func (b *Buffer[T]) constructCopy(dst, src []T) error {
	assert(len(dst) == len(src), "copy construction of mismatching ranges")
	return b.construct(dst, func(i int) T { return src[i] })
}

// constructFill constructs every slot of dst as a copy of v.
func (b *Buffer[T]) constructFill(dst []T, v T) error {
	return b.construct(dst, func(int) T { return v })
}

func (b *Buffer[T]) destroyRange(s []T) {
	a := b.allocator()
	for i := range s {
		a.Destroy(&s[i])
	}
}

func (b *Buffer[T]) release(mem []T) {
	if len(mem) > 0 {
		b.allocator().Deallocate(mem, len(mem))
	}
}

// swapData exchanges storage with other, leaving allocators in place.
func (b *Buffer[T]) swapData(other *Buffer[T]) {
	b.mem, other.mem = other.mem, b.mem
	b.finish, other.finish = other.finish, b.finish
}

// checkLength fails with ErrLength if n elements cannot be stored.
func (b *Buffer[T]) checkLength(n int) error {
	if n < 0 || n > b.MaxSize() {
		return fmt.Errorf("%w: %d > %d", ErrLength, n, b.MaxSize())
	}
	return nil
}

// grow moves the live elements into fresh storage of capacity newCap,
// opening a gap of n slots at pos which is constructed from val. The receiver
// is modified only after every construction succeeded.
func (b *Buffer[T]) grow(newCap, pos, n int, val func(i int) T) error {
	if err := b.checkLength(b.finish + n); err != nil {
		return err
	}
	newCap = min(newCap, b.MaxSize())
	assert(newCap >= b.finish+n, "grown capacity too small")
	a := b.allocator()
	mem, err := a.Allocate(newCap)
	if err != nil {
		tracer().Errorf("buffer: cannot allocate %d slots: %v", newCap, err)
		return err
	}
	if err := b.constructCopy(mem[:pos], b.mem[:pos]); err != nil {
		a.Deallocate(mem, newCap)
		return err
	}
	if n > 0 {
		if err := b.construct(mem[pos:pos+n], val); err != nil {
			b.destroyRange(mem[:pos])
			a.Deallocate(mem, newCap)
			return err
		}
	}
	if err := b.constructCopy(mem[pos+n:b.finish+n], b.mem[pos:b.finish]); err != nil {
		b.destroyRange(mem[:pos+n])
		a.Deallocate(mem, newCap)
		return err
	}
	tracer().Debugf("buffer: reallocated %d -> %d slots", len(b.mem), newCap)
	b.destroyRange(b.mem[:b.finish])
	b.release(b.mem)
	b.mem, b.finish = mem, b.finish+n
	return nil
}

// rebuild replaces the contents by n elements constructed from val, in fresh
// storage of capacity newCap.
func (b *Buffer[T]) rebuild(newCap, n int, val func(i int) T) error {
	if err := b.checkLength(newCap); err != nil {
		return err
	}
	a := b.allocator()
	mem, err := a.Allocate(newCap)
	if err != nil {
		tracer().Errorf("buffer: cannot allocate %d slots: %v", newCap, err)
		return err
	}
	if err := b.construct(mem[:n], val); err != nil {
		a.Deallocate(mem, newCap)
		return err
	}
	b.destroyRange(b.mem[:b.finish])
	b.release(b.mem)
	b.mem, b.finish = mem, n
	return nil
}

// growthFor computes the capacity for adding n elements at once: twice the
// size or twice the capacity, or exactly the required size if larger.
func (b *Buffer[T]) growthFor(n int) int {
	need := b.finish + n
	if need < 2*len(b.mem) {
		return max(need, 2*b.finish)
	}
	return max(need, 2*len(b.mem))
}

// --- Capacity --------------------------------------------------------------

// Reserve ensures a capacity of at least n. A larger capacity is established
// by reallocating to exactly n slots.
func (b *Buffer[T]) Reserve(n int) error {
	if n <= len(b.mem) {
		return nil
	}
	if err := b.checkLength(n); err != nil {
		return err
	}
	return b.grow(n, b.finish, 0, nil)
}

// Resize changes the length to n. New elements are copies of v. Growing
// beyond the capacity reallocates to twice the capacity, or to n if that is
// larger.
func (b *Buffer[T]) Resize(n int, v T) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: negative length %d", ErrLength, n)
	case n <= b.finish:
		b.destroyRange(b.mem[n:b.finish])
		b.finish = n
		return nil
	case n <= len(b.mem):
		if err := b.constructFill(b.mem[b.finish:n], v); err != nil {
			return err
		}
		b.finish = n
		return nil
	}
	return b.grow(max(2*len(b.mem), n), b.finish, n-b.finish, func(int) T { return v })
}

// Clear destroys all elements. The capacity is kept.
func (b *Buffer[T]) Clear() {
	b.destroyRange(b.mem[:b.finish])
	b.finish = 0
}

// Dispose destroys all elements and releases the storage block.
func (b *Buffer[T]) Dispose() {
	b.Clear()
	b.release(b.mem)
	b.mem = nil
}

// --- Copy and swap ---------------------------------------------------------

// Clone returns a deep copy of b with the same capacity and allocator.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	c := &Buffer[T]{alloc: b.allocator()}
	if err := c.rebuild(len(b.mem), b.finish, func(i int) T { return b.mem[i] }); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the contents of b by copies of the elements of src. The
// new storage block is as large as b's capacity or src's length, whichever
// is larger. If copying fails, b is left unchanged.
func (b *Buffer[T]) CopyFrom(src *Buffer[T]) error {
	if b == src {
		return nil
	}
	data := src.Data()
	return b.rebuild(max(len(b.mem), len(data)), len(data), func(i int) T { return data[i] })
}

// Swap exchanges the contents and allocators of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.swapData(other)
	b.alloc, other.alloc = other.alloc, b.alloc
}
