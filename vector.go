package containers

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/containers/buffer"
	"github.com/npillmayer/containers/iterator"
)

// VectorIterator is a random access position within a Vector.
type VectorIterator[T any] = buffer.Iterator[T]

// VectorReverseIterator traverses a Vector from its last element downwards.
type VectorReverseIterator[T any] = iterator.Reverse[VectorIterator[T]]

// Vector is a dynamic array with explicit capacity.
//
// Vector{} is a valid, empty vector. A Vector must not be copied by value;
// use Clone or CopyFrom.
type Vector[T any] struct {
	buf buffer.Buffer[T]
}

// NewVector creates an empty vector with a buffer configuration, which
// allows to supply a custom allocator.
func NewVector[T any](cfg buffer.Config[T]) (*Vector[T], error) {
	b, err := buffer.New(cfg)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{}
	v.buf.Swap(b)
	return v, nil
}

// NewVectorN creates a vector of n copies of val, with a capacity of n.
func NewVectorN[T any](n int, val T) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.AssignN(n, val); err != nil {
		return nil, err
	}
	return v, nil
}

// NewVectorFrom creates a vector holding copies of vals, with a capacity of
// len(vals).
func NewVectorFrom[T any](vals ...T) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.Assign(vals); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.buf.Len()
}

// Cap returns the capacity.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// IsEmpty reports whether v has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.buf.IsEmpty()
}

// MaxSize returns the maximum number of elements the allocator can provide.
func (v *Vector[T]) MaxSize() int {
	return v.buf.MaxSize()
}

// Data returns the elements as a slice aliasing v's storage. The slice is
// invalidated by any operation changing the length or capacity of v.
func (v *Vector[T]) Data() []T {
	return v.buf.Data()
}

// Reserve ensures a capacity of at least n.
func (v *Vector[T]) Reserve(n int) error {
	return traced("vector", "reserve", v.buf.Reserve(n))
}

// Resize changes the length to n, appending copies of val if v grows.
func (v *Vector[T]) Resize(n int, val T) error {
	return traced("vector", "resize", v.buf.Resize(n, val))
}

// Clear removes all elements. The capacity is kept.
func (v *Vector[T]) Clear() {
	v.buf.Clear()
}

// Dispose removes all elements and releases the storage to the allocator.
func (v *Vector[T]) Dispose() {
	v.buf.Dispose()
}

// --- Element access --------------------------------------------------------

// At returns the element at index i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	val, err := v.buf.At(i)
	if err != nil {
		return val, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return val, nil
}

// Index returns a pointer to the element at index i. Unchecked beyond what
// slice indexing does.
func (v *Vector[T]) Index(i int) *T {
	return v.buf.Index(i)
}

// Front returns a pointer to the first element. Unchecked.
func (v *Vector[T]) Front() *T {
	return v.buf.Front()
}

// Back returns a pointer to the last element. Unchecked.
func (v *Vector[T]) Back() *T {
	return v.buf.Back()
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() VectorIterator[T] {
	return v.buf.Begin()
}

// End returns the position past the last element.
func (v *Vector[T]) End() VectorIterator[T] {
	return v.buf.End()
}

// RBegin returns a reverse position at the last element.
func (v *Vector[T]) RBegin() VectorReverseIterator[T] {
	return iterator.MakeReverse(v.End())
}

// REnd returns the reverse position before the first element.
func (v *Vector[T]) REnd() VectorReverseIterator[T] {
	return iterator.MakeReverse(v.Begin())
}

// All returns a sequence of index/element pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, val := range v.buf.Data() {
			if !yield(i, val) {
				return
			}
		}
	}
}

// --- Modification ----------------------------------------------------------

// PushBack appends val.
func (v *Vector[T]) PushBack(val T) error {
	return traced("vector", "push", v.buf.PushBack(val))
}

// PopBack removes the last element. PopBack on an empty vector panics.
func (v *Vector[T]) PopBack() {
	v.buf.PopBack()
}

func (v *Vector[T]) position(pos VectorIterator[T]) (int, error) {
	if pos.Buffer() != &v.buf {
		return 0, fmt.Errorf("%w: position of another vector", ErrIllegalArguments)
	}
	return pos.Index(), nil
}

func (v *Vector[T]) wrap(i int, err error) (VectorIterator[T], error) {
	if errors.Is(err, buffer.ErrOutOfRange) {
		err = fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return v.buf.Pos(i), traced("vector", "insert", err)
}

// Insert puts val before pos and returns the position of the new element.
func (v *Vector[T]) Insert(pos VectorIterator[T], val T) (VectorIterator[T], error) {
	i, err := v.position(pos)
	if err != nil {
		return pos, err
	}
	return v.wrap(v.buf.Insert(i, val))
}

// InsertN puts n copies of val before pos.
func (v *Vector[T]) InsertN(pos VectorIterator[T], n int, val T) (VectorIterator[T], error) {
	i, err := v.position(pos)
	if err != nil {
		return pos, err
	}
	return v.wrap(v.buf.InsertN(i, n, val))
}

// InsertSlice puts copies of vals before pos.
func (v *Vector[T]) InsertSlice(pos VectorIterator[T], vals []T) (VectorIterator[T], error) {
	i, err := v.position(pos)
	if err != nil {
		return pos, err
	}
	return v.wrap(v.buf.InsertSlice(i, vals))
}

// InsertRange puts copies of the elements of [first, last) before pos. The
// range may belong to v itself.
func (v *Vector[T]) InsertRange(pos, first, last VectorIterator[T]) (VectorIterator[T], error) {
	if first.Buffer() != last.Buffer() || last.Less(first) {
		return pos, fmt.Errorf("%w: not a range", ErrIllegalArguments)
	}
	if first.Equal(last) {
		return pos, nil
	}
	return v.InsertSlice(pos, first.Buffer().Data()[first.Index():last.Index()])
}

// Erase removes the element at pos and returns the position following it.
// pos has to refer to an element of v; Erase panics for End and for
// positions of other vectors.
func (v *Vector[T]) Erase(pos VectorIterator[T]) VectorIterator[T] {
	assert(pos.Buffer() == &v.buf, "vector: erase position of another vector")
	assert(0 <= pos.Index() && pos.Index() < v.Len(), "vector: erase position out of range")
	return v.buf.Pos(v.buf.Erase(pos.Index()))
}

// EraseRange removes the elements of [first, last) and returns the position
// following the removed range. Like Erase, it panics unless [first, last)
// is a range of v.
func (v *Vector[E]) EraseRange(first, last VectorIterator[E]) VectorIterator[E] {
	assert(first.Buffer() == &v.buf && last.Buffer() == &v.buf, "vector: erase range of another vector")
	assert(0 <= first.Index() && first.Index() <= last.Index() && last.Index() <= v.Len(),
		"vector: erase range out of range")
	T().P("vector", "erase").Debugf("erase [%d,%d)", first.Index(), last.Index())
	return v.buf.Pos(v.buf.EraseRange(first.Index(), last.Index()))
}

// Assign replaces the elements by copies of vals.
func (v *Vector[T]) Assign(vals []T) error {
	return traced("vector", "assign", v.buf.Assign(vals))
}

// AssignN replaces the elements by n copies of val.
func (v *Vector[T]) AssignN(n int, val T) error {
	return traced("vector", "assign", v.buf.AssignN(n, val))
}

// --- Copy and swap ---------------------------------------------------------

// Clone returns a deep copy of v with the same capacity.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	b, err := v.buf.Clone()
	if err != nil {
		return nil, traced("vector", "clone", err)
	}
	c := &Vector[T]{}
	c.buf.Swap(b)
	return c, nil
}

// CopyFrom replaces the elements of v by copies of the elements of src. On
// failure, v is left unchanged.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	return traced("vector", "copy", v.buf.CopyFrom(&src.buf))
}

// Swap exchanges the elements of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
}
