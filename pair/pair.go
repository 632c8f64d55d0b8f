/*
Package pair provides a generic key/value product type.

Ordering of pairs is always derived from the first component, using a
comparator supplied by the caller.
*/
package pair

// Pair holds a key and an associated value.
type Pair[K, V any] struct {
	First  K
	Second V
}

// Make creates a pair from k and v.
func Make[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{First: k, Second: v}
}

// Less orders two pairs by their first component.
func Less[K, V any](less func(a, b K) bool, p, q Pair[K, V]) bool {
	return less(p.First, q.First)
}

// Equivalent reports whether neither key orders before the other.
func Equivalent[K any](less func(a, b K) bool, a, b K) bool {
	return !less(a, b) && !less(b, a)
}
