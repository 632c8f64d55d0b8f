/*
Package iterator describes the traversal capabilities of container positions
and provides the generic algorithms built on top of them.

Iterators in this module are small values. Moving an iterator returns a new
value; the receiver is left unchanged:

	for it := m.Begin(); !it.Equal(m.End()); it = it.Next() {
	    …
	}

Positions of an ordered map are bidirectional, positions of a vector are
random access. Algorithms check for random access capability at run time and
use the constant-time operations where available.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package iterator

import "iter"

// Forward is a position which can be moved towards the end of a range.
type Forward[I any] interface {
	Next() I
	Equal(I) bool
}

// Bidirectional is a position which can move in both directions.
type Bidirectional[I any] interface {
	Forward[I]
	Prev() I
}

// RandomAccess is a position supporting offset arithmetic and ordering.
type RandomAccess[I any] interface {
	Bidirectional[I]
	// Add returns the position n steps away (n may be negative).
	Add(n int) I
	// Sub returns the number of steps from other to the receiver.
	Sub(other I) int
	// Less reports whether the receiver is before other.
	Less(other I) bool
}

// Readable is a forward position which can be dereferenced.
type Readable[I, T any] interface {
	Forward[I]
	Get() T
}

// Advance moves it by n steps. A negative n moves backwards.
func Advance[I Bidirectional[I]](it I, n int) I {
	if ra, ok := any(it).(RandomAccess[I]); ok {
		return ra.Add(n)
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Distance counts the steps from first to last. last must be reachable from
// first.
func Distance[I Forward[I]](first, last I) int {
	if ra, ok := any(last).(RandomAccess[I]); ok {
		return ra.Sub(first)
	}
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// All returns a sequence over the values of [first, last).
func All[I Readable[I, T], T any](first, last I) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; !it.Equal(last); it = it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}
