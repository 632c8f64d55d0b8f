package bst

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/npillmayer/containers/pair"
)

// Tree is an unbalanced binary search tree of unique keys.
//
// Tree exclusively owns its nodes, including its sentinel. Copies have to be
// made with Clone or CopyFrom; copying a Tree value shares nodes and is a
// programming error.
type Tree[K, V any] struct {
	cfg      Config[K, V]
	sentinel *Node[K, V]
	root     *Node[K, V] // == sentinel for an empty tree
	size     int
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K, V]{cfg: cfg}
	s, err := t.newNode(pair.Pair[K, V]{})
	if err != nil {
		return nil, err
	}
	s.left, s.right = s, s
	t.sentinel, t.root = s, s
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	return t.cfg
}

// Sentinel returns the tree's off-tree node, which doubles as the end
// position.
func (t *Tree[K, V]) Sentinel() *Node[K, V] {
	return t.sentinel
}

// Root returns the root node, or the sentinel for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Len returns the number of items in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// MaxSize returns the maximum number of nodes the allocator can provide.
func (t *Tree[K, V]) MaxSize() int {
	return t.cfg.Allocator.MaxSize()
}

// First returns the node with the smallest key, or the sentinel.
func (t *Tree[K, V]) First() *Node[K, V] {
	return t.sentinel.left
}

// Last returns the node with the largest key, or the sentinel.
func (t *Tree[K, V]) Last() *Node[K, V] {
	return t.sentinel.right
}

// Successor returns the in-order successor of n. A nil n yields the first
// node.
func (t *Tree[K, V]) Successor(n *Node[K, V]) *Node[K, V] {
	return successor(n, t.sentinel)
}

// Predecessor returns the in-order predecessor of n.
func (t *Tree[K, V]) Predecessor(n *Node[K, V]) *Node[K, V] {
	return predecessor(n, t.sentinel)
}

// --- Node lifecycle --------------------------------------------------------

func (t *Tree[K, V]) newNode(item pair.Pair[K, V]) (*Node[K, V], error) {
	mem, err := t.cfg.Allocator.Allocate(1)
	if err != nil {
		tracer().Errorf("bst: cannot allocate node: %v", err)
		return nil, err
	}
	n := &mem[0]
	if err := t.cfg.Allocator.Construct(n, Node[K, V]{item: item}); err != nil {
		t.cfg.Allocator.Deallocate(mem, 1)
		return nil, err
	}
	return n, nil
}

func (t *Tree[K, V]) freeNode(n *Node[K, V]) {
	t.cfg.Allocator.Destroy(n)
	t.cfg.Allocator.Deallocate(unsafe.Slice(n, 1), 1)
}

// --- Insertion and deletion ------------------------------------------------

// Insert adds item to the tree, unless a node with an equivalent key is
// already present. It returns the node holding the key and whether a new node
// has been created.
//
// On allocation failure the tree is left unchanged and the sentinel is
// returned together with the error.
func (t *Tree[K, V]) Insert(item pair.Pair[K, V]) (*Node[K, V], bool, error) {
	s, less := t.sentinel, t.cfg.Less
	parent, x := s, t.root
	left := false
	for x != s {
		parent = x
		switch {
		case less(item.First, x.item.First):
			x, left = x.left, true
		case less(x.item.First, item.First):
			x, left = x.right, false
		default:
			return x, false, nil
		}
	}
	n, err := t.newNode(item)
	if err != nil {
		return s, false, err
	}
	n.parent, n.left, n.right = parent, s, s
	switch {
	case parent == s:
		t.root = n
		s.left, s.right = n, n
	case left:
		parent.left = n
		if parent == s.left {
			s.left = n
		}
	default:
		parent.right = n
		if parent == s.right {
			s.right = n
		}
	}
	t.size++
	return n, true, nil
}

// Erase unlinks n from the tree and releases it. Erasing the sentinel (or
// nil) is a no-op.
//
// A node with two children is replaced by its right subtree, and its left
// subtree is attached below the minimum of the right subtree. This keeps the
// ordering intact without copying items between nodes, so nodes other than n
// (and positions referring to them) stay valid.
func (t *Tree[K, V]) Erase(n *Node[K, V]) {
	s := t.sentinel
	if n == nil || n == s {
		return
	}
	wasMin, wasMax := n == s.left, n == s.right
	switch {
	case n.left != s && n.right != s:
		succ := minUnder(n.right, s)
		tracer().Debugf("bst: erase %v with two children, splicing below %v", n.item.First, succ.item.First)
		t.replace(n, n.right)
		n.left.parent = succ
		succ.left = n.left
	case n.left == s && n.right == s:
		t.replace(n, s)
	case n.left != s:
		t.replace(n, n.left)
	default:
		t.replace(n, n.right)
	}
	t.size--
	if t.size == 0 {
		assert(t.root == s, "empty tree must have sentinel as root")
		s.left, s.right = s, s
	} else {
		if wasMin {
			s.left = minUnder(t.root, s)
		}
		if wasMax {
			s.right = maxUnder(t.root, s)
		}
	}
	t.freeNode(n)
}

// replace puts child into the position of n, relative to n's parent.
func (t *Tree[K, V]) replace(n, child *Node[K, V]) {
	s, p := t.sentinel, n.parent
	switch {
	case p == s:
		t.root = child
	case p.left == n:
		p.left = child
	default:
		p.right = child
	}
	if child != s {
		child.parent = p
	}
}

// Clear releases every node except the sentinel.
func (t *Tree[K, V]) Clear() {
	if t.size == 0 {
		return
	}
	t.clearSubtree(t.root)
	s := t.sentinel
	t.root, s.left, s.right = s, s, s
	t.size = 0
}

// clearSubtree releases n and all its descendants, children first.
func (t *Tree[K, V]) clearSubtree(n *Node[K, V]) {
	s := t.sentinel
	for n != s {
		t.clearSubtree(n.left)
		r := n.right
		t.freeNode(n)
		n = r
	}
}

// Dispose releases all nodes including the sentinel. The tree must not be
// used afterwards.
func (t *Tree[K, V]) Dispose() {
	if t == nil || t.sentinel == nil {
		return
	}
	t.Clear()
	t.freeNode(t.sentinel)
	t.sentinel, t.root = nil, nil
}

// --- Lookup ----------------------------------------------------------------

// Find returns the node with a key equivalent to key, or the sentinel.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	return t.FindFrom(t.root, key)
}

// FindFrom searches the subtree rooted at n.
func (t *Tree[K, V]) FindFrom(n *Node[K, V], key K) *Node[K, V] {
	s, less := t.sentinel, t.cfg.Less
	for n != s {
		switch {
		case less(key, n.item.First):
			n = n.left
		case less(n.item.First, key):
			n = n.right
		default:
			return n
		}
	}
	return s
}

// LowerBound returns the first node whose key is not less than key, or the
// sentinel.
func (t *Tree[K, V]) LowerBound(key K) *Node[K, V] {
	return t.LowerBoundFrom(t.root, key)
}

// LowerBoundFrom searches the subtree rooted at n.
func (t *Tree[K, V]) LowerBoundFrom(n *Node[K, V], key K) *Node[K, V] {
	s, less := t.sentinel, t.cfg.Less
	if t.size == 0 || less(s.right.item.First, key) {
		return s
	}
	best := s
	for n != s {
		if !less(n.item.First, key) {
			best, n = n, n.left
		} else {
			n = n.right
		}
	}
	return best
}

// UpperBound returns the first node whose key is greater than key, or the
// sentinel.
func (t *Tree[K, V]) UpperBound(key K) *Node[K, V] {
	return t.UpperBoundFrom(t.root, key)
}

// UpperBoundFrom searches the subtree rooted at n.
func (t *Tree[K, V]) UpperBoundFrom(n *Node[K, V], key K) *Node[K, V] {
	s, less := t.sentinel, t.cfg.Less
	if t.size == 0 || !less(key, s.right.item.First) {
		return s
	}
	if less(key, s.left.item.First) {
		return s.left
	}
	best := s
	for n != s {
		switch {
		case less(key, n.item.First):
			best, n = n, n.left
		case less(n.item.First, key):
			n = n.right
		default:
			return successor(n, s)
		}
	}
	return best
}

// --- Copy and swap ---------------------------------------------------------

// Clone returns a deep copy of t, sharing no nodes with t. The clone uses the
// same configuration, including the allocator.
func (t *Tree[K, V]) Clone() (*Tree[K, V], error) {
	c, err := New(t.cfg)
	if err != nil {
		return nil, err
	}
	if err := c.copyTree(t.root, t.sentinel); err != nil {
		c.Dispose()
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the contents of t by a deep copy of src, adopting src's
// comparator. t keeps its allocator. If copying fails, t is left unchanged.
func (t *Tree[K, V]) CopyFrom(src *Tree[K, V]) error {
	if t == src {
		return nil
	}
	c, err := New(Config[K, V]{Less: src.cfg.Less, Allocator: t.cfg.Allocator})
	if err != nil {
		return err
	}
	if err := c.copyTree(src.root, src.sentinel); err != nil {
		c.Dispose()
		return err
	}
	t.Swap(c)
	c.Dispose()
	return nil
}

// copyTree re-inserts the subtree rooted at n in pre-order, which reproduces
// the shape of the source subtree.
func (t *Tree[K, V]) copyTree(n, s *Node[K, V]) error {
	for n != s {
		if _, _, err := t.Insert(n.item); err != nil {
			return fmt.Errorf("bst: copying tree: %w", err)
		}
		if err := t.copyTree(n.left, s); err != nil {
			return err
		}
		n = n.right
	}
	return nil
}

// Swap exchanges the contents of t and other, including configurations.
// No node is touched.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	*t, *other = *other, *t
}

// --- Iteration -------------------------------------------------------------

// ForEach calls f for every node in key order, until f returns false.
func (t *Tree[K, V]) ForEach(f func(n *Node[K, V]) bool) {
	s := t.sentinel
	for n := s.left; n != s; n = successor(n, s) {
		if !f(n) {
			return
		}
	}
}

// All returns a sequence over key/value pairs in key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ForEach(func(n *Node[K, V]) bool {
			return yield(n.item.First, n.item.Second)
		})
	}
}

// Keys returns the keys in order. Intended for tests and diagnostics.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.ForEach(func(n *Node[K, V]) bool {
		keys = append(keys, n.item.First)
		return true
	})
	return keys
}
