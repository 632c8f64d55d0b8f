package bst

import "github.com/npillmayer/containers/pair"

// Node holds one key/value item plus links to its parent and children.
//
// Links do not own anything; the tree owning a node is responsible for its
// lifetime. Absent children are represented by the tree's sentinel.
type Node[K, V any] struct {
	item   pair.Pair[K, V]
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K {
	return n.item.First
}

// Value returns the node's mapped value.
func (n *Node[K, V]) Value() V {
	return n.item.Second
}

// ValuePtr returns a pointer to the node's mapped value. The key is not
// accessible for modification, as changing it would break the ordering.
func (n *Node[K, V]) ValuePtr() *V {
	return &n.item.Second
}

// Item returns a copy of the node's key/value pair.
func (n *Node[K, V]) Item() pair.Pair[K, V] {
	return n.item
}

// Parent returns the parent link. It is nil for a sentinel only.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// Left returns the left link.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right link.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// IsSentinel reports whether n is a sentinel node.
func (n *Node[K, V]) IsSentinel() bool {
	return n.parent == nil
}
