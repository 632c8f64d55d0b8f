package buffer

import (
	"fmt"
	"slices"
)

// PushBack appends v. If the storage block is full, the capacity doubles.
func (b *Buffer[T]) PushBack(v T) error {
	if b.finish < len(b.mem) {
		if err := b.allocator().Construct(&b.mem[b.finish], v); err != nil {
			return err
		}
		b.finish++
		return nil
	}
	return b.grow(max(2*b.finish, 1), b.finish, 1, func(int) T { return v })
}

// PopBack destroys the last element. Calling PopBack on an empty buffer
// panics.
func (b *Buffer[T]) PopBack() {
	last := b.finish - 1
	b.allocator().Destroy(&b.mem[:b.finish][last])
	b.finish = last
}

func (b *Buffer[T]) checkPosition(pos int) error {
	if pos < 0 || pos > b.finish {
		return fmt.Errorf("%w: position %d, length %d", ErrOutOfRange, pos, b.finish)
	}
	return nil
}

// Insert puts v before position pos and returns the position of the new
// element.
func (b *Buffer[T]) Insert(pos int, v T) (int, error) {
	if err := b.checkPosition(pos); err != nil {
		return pos, err
	}
	if pos == b.finish {
		return pos, b.PushBack(v)
	}
	if b.finish == len(b.mem) {
		return pos, b.grow(max(2*len(b.mem), 1), pos, 1, func(int) T { return v })
	}
	last := b.finish - 1
	if err := b.allocator().Construct(&b.mem[b.finish], b.mem[last]); err != nil {
		return pos, err
	}
	copy(b.mem[pos+1:b.finish], b.mem[pos:last])
	b.mem[pos] = v
	b.finish++
	return pos, nil
}

// InsertN puts n copies of v before position pos and returns pos.
func (b *Buffer[T]) InsertN(pos, n int, v T) (int, error) {
	if n < 0 {
		return pos, fmt.Errorf("%w: negative count %d", ErrLength, n)
	}
	return b.insert(pos, n, func(int) T { return v })
}

// InsertSlice puts copies of vs before position pos and returns pos. vs may
// alias the buffer's own elements.
func (b *Buffer[T]) InsertSlice(pos int, vs []T) (int, error) {
	if len(vs) > 0 && len(b.mem) > 0 && b.finish+len(vs) <= len(b.mem) {
		vs = slices.Clone(vs) // in-place shifting would overwrite aliased values
	}
	return b.insert(pos, len(vs), func(i int) T { return vs[i] })
}

// insert opens a gap of n slots at pos and fills it from val.
func (b *Buffer[T]) insert(pos, n int, val func(i int) T) (int, error) {
	if err := b.checkPosition(pos); err != nil {
		return pos, err
	}
	if n == 0 {
		return pos, nil
	}
	if b.finish+n > len(b.mem) {
		if err := b.checkLength(b.finish + n); err != nil {
			return pos, err
		}
		return pos, b.grow(b.growthFor(n), pos, n, val)
	}
	oldFinish := b.finish
	after := oldFinish - pos
	if after > n {
		// the last n elements move into uninitialized slots
		if err := b.constructCopy(b.mem[oldFinish:oldFinish+n], b.mem[oldFinish-n:oldFinish]); err != nil {
			return pos, err
		}
		copy(b.mem[pos+n:oldFinish], b.mem[pos:oldFinish-n])
		for i := range n {
			b.mem[pos+i] = val(i)
		}
	} else {
		// part of the new values lands beyond the old end
		if err := b.construct(b.mem[oldFinish:pos+n], func(i int) T { return val(after + i) }); err != nil {
			return pos, err
		}
		if err := b.constructCopy(b.mem[pos+n:oldFinish+n], b.mem[pos:oldFinish]); err != nil {
			b.destroyRange(b.mem[oldFinish : pos+n])
			return pos, err
		}
		for i := range after {
			b.mem[pos+i] = val(i)
		}
	}
	b.finish += n
	return pos, nil
}

// Erase removes the element at pos and returns the position following it,
// which is pos.
func (b *Buffer[T]) Erase(pos int) int {
	return b.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns first.
func (b *Buffer[T]) EraseRange(first, last int) int {
	assert(0 <= first && first <= last && last <= b.finish, "erase range out of bounds")
	if first == last {
		return first
	}
	copy(b.mem[first:], b.mem[last:b.finish])
	n := last - first
	b.destroyRange(b.mem[b.finish-n : b.finish])
	b.finish -= n
	return first
}

// Assign replaces the contents by copies of vs. If vs does not fit into the
// storage block, a block of exactly len(vs) slots replaces it.
func (b *Buffer[T]) Assign(vs []T) error {
	if len(vs) > len(b.mem) {
		return b.rebuild(len(vs), len(vs), func(i int) T { return vs[i] })
	}
	vs = slices.Clone(vs)
	b.Clear()
	if err := b.construct(b.mem[:len(vs)], func(i int) T { return vs[i] }); err != nil {
		return err
	}
	b.finish = len(vs)
	return nil
}

// AssignN replaces the contents by n copies of v.
func (b *Buffer[T]) AssignN(n int, v T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrLength, n)
	}
	if n > len(b.mem) {
		return b.rebuild(n, n, func(int) T { return v })
	}
	b.Clear()
	if err := b.constructFill(b.mem[:n], v); err != nil {
		return err
	}
	b.finish = n
	return nil
}
