package buffer

// Iterator is a random access position within a buffer. Iterators are
// invalidated by reallocation, and by insertion or erasure at or before
// their position.
type Iterator[T any] struct {
	buf *Buffer[T]
	pos int
}

// Begin returns the position of the first element.
func (b *Buffer[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: b, pos: 0}
}

// End returns the position one past the last element.
func (b *Buffer[T]) End() Iterator[T] {
	return Iterator[T]{buf: b, pos: b.finish}
}

// Pos returns the position at index i.
func (b *Buffer[T]) Pos(i int) Iterator[T] {
	return Iterator[T]{buf: b, pos: i}
}

// Index returns the index of it within its buffer.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Buffer returns the buffer it belongs to.
func (it Iterator[T]) Buffer() *Buffer[T] {
	return it.buf
}

func (it Iterator[T]) Next() Iterator[T]            { return Iterator[T]{it.buf, it.pos + 1} }
func (it Iterator[T]) Prev() Iterator[T]            { return Iterator[T]{it.buf, it.pos - 1} }
func (it Iterator[T]) Add(n int) Iterator[T]        { return Iterator[T]{it.buf, it.pos + n} }
func (it Iterator[T]) Sub(other Iterator[T]) int    { return it.pos - other.pos }
func (it Iterator[T]) Less(other Iterator[T]) bool  { return it.pos < other.pos }
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.buf == other.buf && it.pos == other.pos }

// Get returns the element at it. Unchecked.
func (it Iterator[T]) Get() T {
	return *it.buf.Index(it.pos)
}

// Ptr returns a pointer to the element at it. Unchecked.
func (it Iterator[T]) Ptr() *T {
	return it.buf.Index(it.pos)
}

// Set replaces the element at it. Unchecked.
func (it Iterator[T]) Set(v T) {
	*it.buf.Index(it.pos) = v
}
