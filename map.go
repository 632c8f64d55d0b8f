package containers

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/containers/bst"
	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/containers/pair"
)

// MapIterator is a bidirectional position within a Map.
type MapIterator[K, V any] = bst.Iterator[K, V]

// MapReverseIterator traverses a Map from its largest key downwards.
type MapReverseIterator[K, V any] = iterator.Reverse[MapIterator[K, V]]

// Map is an ordered associative container of unique keys.
//
// A Map must be created with one of the constructors. Copying a Map value
// shares its tree; use Clone or Assign for copies.
type Map[K, V any] struct {
	tree *bst.Tree[K, V]
}

// NewMap creates an empty map ordered by the natural ordering of K.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	m, err := NewMapWithConfig(bst.OrderedConfig[K, V]())
	assert(err == nil, "cannot create map with default configuration")
	return m
}

// NewMapFunc creates an empty map ordered by less, which has to establish a
// strict weak ordering.
func NewMapFunc[K, V any](less func(a, b K) bool) (*Map[K, V], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrIllegalArguments)
	}
	return NewMapWithConfig(bst.Config[K, V]{Less: less})
}

// NewMapWithConfig creates an empty map from a tree configuration, which
// allows to supply a custom allocator.
func NewMapWithConfig[K, V any](cfg bst.Config[K, V]) (*Map[K, V], error) {
	tree, err := bst.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether m has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// MaxSize returns the maximum number of entries the allocator can provide.
func (m *Map[K, V]) MaxSize() int {
	return m.tree.MaxSize()
}

// KeyLess returns the key comparator.
func (m *Map[K, V]) KeyLess() func(a, b K) bool {
	return m.tree.Config().Less
}

// ValueLess returns a comparator for entries, ordering them by key.
func (m *Map[K, V]) ValueLess() func(a, b pair.Pair[K, V]) bool {
	less := m.KeyLess()
	return func(a, b pair.Pair[K, V]) bool {
		return pair.Less(less, a, b)
	}
}

// Begin returns the position of the smallest key.
func (m *Map[K, V]) Begin() MapIterator[K, V] {
	return m.tree.Begin()
}

// End returns the position past the largest key.
func (m *Map[K, V]) End() MapIterator[K, V] {
	return m.tree.End()
}

// RBegin returns a reverse position at the largest key.
func (m *Map[K, V]) RBegin() MapReverseIterator[K, V] {
	return iterator.MakeReverse(m.End())
}

// REnd returns the reverse position past the smallest key.
func (m *Map[K, V]) REnd() MapReverseIterator[K, V] {
	return iterator.MakeReverse(m.Begin())
}

// All returns a sequence of key/value pairs in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// --- Insertion -------------------------------------------------------------

// Insert adds an entry for k, unless k is already present. It returns the
// position of the entry for k and whether it has been inserted.
func (m *Map[K, V]) Insert(k K, v V) (MapIterator[K, V], bool, error) {
	n, ok, err := m.tree.Insert(pair.Make(k, v))
	return m.tree.At(n), ok, traced("map", "insert", err)
}

// InsertHint is Insert with a position hint. The hint is not used.
func (m *Map[K, V]) InsertHint(hint MapIterator[K, V], k K, v V) (MapIterator[K, V], error) {
	it, _, err := m.Insert(k, v)
	return it, err
}

// InsertRange inserts the entries of [first, last), which may belong to
// another map. Keys already present are skipped.
func (m *Map[K, V]) InsertRange(first, last MapIterator[K, V]) error {
	for item := range iterator.All[MapIterator[K, V], pair.Pair[K, V]](first, last) {
		if _, _, err := m.tree.Insert(item); err != nil {
			return traced("map", "insert", err)
		}
	}
	return nil
}

// InsertAll inserts every key/value pair of seq. Keys already present are
// skipped.
func (m *Map[K, V]) InsertAll(seq iter.Seq2[K, V]) error {
	for k, v := range seq {
		if _, _, err := m.tree.Insert(pair.Make(k, v)); err != nil {
			return traced("map", "insert", err)
		}
	}
	return nil
}

// Index returns a pointer to the value for k, inserting an entry with the
// zero value if k is absent.
func (m *Map[K, V]) Index(k K) (*V, error) {
	var zero V
	n, _, err := m.tree.Insert(pair.Make(k, zero))
	if err != nil {
		return nil, traced("map", "index", err)
	}
	return n.ValuePtr(), nil
}

// --- Erasure ---------------------------------------------------------------

// Erase removes the entry at pos and returns the position following it.
// Erasing End is a no-op.
func (m *Map[K, V]) Erase(pos MapIterator[K, V]) MapIterator[K, V] {
	if pos.IsEnd() {
		return pos
	}
	next := pos.Next()
	T().P("map", "erase").Debugf("erase key %v", pos.Key())
	m.tree.Erase(pos.Node())
	return next
}

// EraseKey removes the entry for k and returns the number of entries
// removed, 0 or 1.
func (m *Map[K, V]) EraseKey(k K) int {
	n := m.tree.Find(k)
	if n == m.tree.Sentinel() {
		return 0
	}
	m.tree.Erase(n)
	return 1
}

// EraseRange removes the entries in [first, last) and returns last.
func (m *Map[K, V]) EraseRange(first, last MapIterator[K, V]) MapIterator[K, V] {
	for !first.Equal(last) {
		first = m.Erase(first)
	}
	return last
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Dispose removes all entries and releases every node to the allocator. The
// map must not be used afterwards.
func (m *Map[K, V]) Dispose() {
	m.tree.Dispose()
}

// --- Lookup ----------------------------------------------------------------

// Find returns the position of the entry for k, or End.
func (m *Map[K, V]) Find(k K) MapIterator[K, V] {
	return m.tree.At(m.tree.Find(k))
}

// Count returns the number of entries for k, 0 or 1.
func (m *Map[K, V]) Count(k K) int {
	if m.tree.Find(k) == m.tree.Sentinel() {
		return 0
	}
	return 1
}

// At returns the value for k, or ErrOutOfRange.
func (m *Map[K, V]) At(k K) (V, error) {
	n := m.tree.Find(k)
	if n == m.tree.Sentinel() {
		var zero V
		return zero, fmt.Errorf("%w: key %v not found", ErrOutOfRange, k)
	}
	return n.Value(), nil
}

// LowerBound returns the position of the first key not less than k.
func (m *Map[K, V]) LowerBound(k K) MapIterator[K, V] {
	return m.tree.At(m.tree.LowerBound(k))
}

// UpperBound returns the position of the first key greater than k.
func (m *Map[K, V]) UpperBound(k K) MapIterator[K, V] {
	return m.tree.At(m.tree.UpperBound(k))
}

// EqualRange returns the range of entries with a key equivalent to k.
func (m *Map[K, V]) EqualRange(k K) (MapIterator[K, V], MapIterator[K, V]) {
	return m.LowerBound(k), m.UpperBound(k)
}

// --- Copy and swap ---------------------------------------------------------

// Clone returns a deep copy of m.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	tree, err := m.tree.Clone()
	if err != nil {
		return nil, traced("map", "clone", err)
	}
	return &Map[K, V]{tree: tree}, nil
}

// Assign replaces the entries of m by copies of the entries of src. On
// failure, m is left unchanged.
func (m *Map[K, V]) Assign(src *Map[K, V]) error {
	return traced("map", "assign", m.tree.CopyFrom(src.tree))
}

// Swap exchanges the entries of m and other. Positions stay valid and refer
// to the other map afterwards.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree, other.tree = other.tree, m.tree
}

// Tree exposes the engine, for diagnostics.
func (m *Map[K, V]) Tree() *bst.Tree[K, V] {
	return m.tree
}
