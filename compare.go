package containers

import (
	"cmp"

	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/containers/pair"
)

// Containers compare element-wise. Two containers are equal if they have the
// same length and pairwise equal elements; ordering is lexicographic.

// VectorsEqual reports whether a and b hold equal elements.
func VectorsEqual[T comparable](a, b *Vector[T]) bool {
	return VectorsEqualFunc(a, b, func(x, y T) bool { return x == y })
}

// VectorsEqualFunc is VectorsEqual with a custom element equality.
func VectorsEqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return iterator.Equal(a.Begin(), a.End(), b.Begin(), eq)
}

// VectorsLess reports whether a orders lexicographically before b.
func VectorsLess[T cmp.Ordered](a, b *Vector[T]) bool {
	return VectorsLessFunc(a, b, cmp.Less[T])
}

// VectorsLessFunc is VectorsLess with a custom element ordering.
func VectorsLessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	return iterator.LexicographicalCompare(a.Begin(), a.End(), b.Begin(), b.End(), less)
}

// VectorsCompare returns -1, 0 or +1, depending on whether a orders before,
// equal to, or after b.
func VectorsCompare[T cmp.Ordered](a, b *Vector[T]) int {
	return compareWith(a, b, VectorsLess[T])
}

// MapsEqual reports whether a and b hold equal entries.
func MapsEqual[K, V comparable](a, b *Map[K, V]) bool {
	return MapsEqualFunc(a, b, func(x, y pair.Pair[K, V]) bool { return x == y })
}

// MapsEqualFunc is MapsEqual with a custom entry equality.
func MapsEqualFunc[K, V any](a, b *Map[K, V], eq func(x, y pair.Pair[K, V]) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return iterator.Equal(a.Begin(), a.End(), b.Begin(), eq)
}

// MapsLess reports whether the entries of a order lexicographically before
// the entries of b. Entries compare by key, then by value.
func MapsLess[K, V cmp.Ordered](a, b *Map[K, V]) bool {
	return MapsLessFunc(a, b, func(x, y pair.Pair[K, V]) bool {
		if c := cmp.Compare(x.First, y.First); c != 0 {
			return c < 0
		}
		return cmp.Less(x.Second, y.Second)
	})
}

// MapsLessFunc is MapsLess with a custom entry ordering.
func MapsLessFunc[K, V any](a, b *Map[K, V], less func(x, y pair.Pair[K, V]) bool) bool {
	return iterator.LexicographicalCompare(a.Begin(), a.End(), b.Begin(), b.End(), less)
}

// MapsCompare returns -1, 0 or +1, depending on whether a orders before,
// equal to, or after b.
func MapsCompare[K, V cmp.Ordered](a, b *Map[K, V]) int {
	return compareWith(a, b, MapsLess[K, V])
}

func compareWith[C any](a, b C, less func(x, y C) bool) int {
	switch {
	case less(a, b):
		return -1
	case less(b, a):
		return 1
	}
	return 0
}
