package bst

import "github.com/npillmayer/containers/pair"

// Iterator is a bidirectional position within a tree. Its zero value is not
// a valid position.
//
// An iterator stays valid across insertions and across erasure of any node
// other than the one it refers to.
type Iterator[K, V any] struct {
	node     *Node[K, V]
	sentinel *Node[K, V]
}

// Begin returns a position at the smallest key.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: t.sentinel.left, sentinel: t.sentinel}
}

// End returns the off-tree position.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{node: t.sentinel, sentinel: t.sentinel}
}

// At returns a position referring to n, which must belong to t.
func (t *Tree[K, V]) At(n *Node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{node: n, sentinel: t.sentinel}
}

// Next returns the position of the in-order successor. Moving past the end
// wraps to the first node.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{node: successor(it.node, it.sentinel), sentinel: it.sentinel}
}

// Prev returns the position of the in-order predecessor. Moving back from the
// end yields the last node.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{node: predecessor(it.node, it.sentinel), sentinel: it.sentinel}
}

// Equal is node identity.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// IsEnd reports whether it is the off-tree position.
func (it Iterator[K, V]) IsEnd() bool {
	return it.node == it.sentinel
}

// Node returns the node it refers to.
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// Get returns the key/value pair at it.
func (it Iterator[K, V]) Get() pair.Pair[K, V] {
	return it.node.item
}

// Key returns the key at it.
func (it Iterator[K, V]) Key() K {
	return it.node.item.First
}

// Value returns the mapped value at it.
func (it Iterator[K, V]) Value() V {
	return it.node.item.Second
}

// ValuePtr returns a pointer to the mapped value at it.
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.node.item.Second
}

// SetValue replaces the mapped value at it.
func (it Iterator[K, V]) SetValue(v V) {
	it.node.item.Second = v
}
