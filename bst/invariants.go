package bst

import "fmt"

// Check validates structural tree invariants:
//   - the sentinel is the only node without a parent,
//   - parent and child links agree,
//   - keys are strictly ascending in order,
//   - the node count matches Len,
//   - the sentinel caches the minimum and maximum node.
//
// Check is meant for tests and diagnostics.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.sentinel == nil {
		return fmt.Errorf("%w: nil or disposed tree", ErrInvariant)
	}
	s := t.sentinel
	if s.parent != nil {
		return fmt.Errorf("%w: sentinel has a parent", ErrInvariant)
	}
	if t.root == s {
		if t.size != 0 {
			return fmt.Errorf("%w: empty root with size %d", ErrInvariant, t.size)
		}
		if s.left != s || s.right != s {
			return fmt.Errorf("%w: empty tree caches real nodes", ErrInvariant)
		}
		return nil
	}
	if t.root.parent != s {
		return fmt.Errorf("%w: root is not a child of the sentinel", ErrInvariant)
	}
	count, err := t.checkNode(t.root, t.size)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrInvariant, count, t.size)
	}
	if s.left != minUnder(t.root, s) {
		return fmt.Errorf("%w: sentinel does not cache the minimum", ErrInvariant)
	}
	if s.right != maxUnder(t.root, s) {
		return fmt.Errorf("%w: sentinel does not cache the maximum", ErrInvariant)
	}
	var prev *Node[K, V]
	for n := s.left; n != s; n = successor(n, s) {
		if prev != nil && !t.cfg.Less(prev.item.First, n.item.First) {
			return fmt.Errorf("%w: keys out of order at %v", ErrInvariant, n.item.First)
		}
		prev = n
	}
	return nil
}

// checkNode verifies links below n and returns the number of nodes in the
// subtree. budget bounds the walk in case of cycles.
func (t *Tree[K, V]) checkNode(n *Node[K, V], budget int) (int, error) {
	s := t.sentinel
	if n == nil {
		return 0, fmt.Errorf("%w: nil link", ErrInvariant)
	}
	if n == s {
		return 0, nil
	}
	if budget <= 0 {
		return 0, fmt.Errorf("%w: more nodes reachable than recorded", ErrInvariant)
	}
	if n.parent == nil {
		return 0, fmt.Errorf("%w: real node without parent", ErrInvariant)
	}
	for _, c := range [2]*Node[K, V]{n.left, n.right} {
		if c != nil && c != s && c.parent != n {
			return 0, fmt.Errorf("%w: child of %v links to another parent", ErrInvariant, n.item.First)
		}
	}
	l, err := t.checkNode(n.left, budget-1)
	if err != nil {
		return 0, err
	}
	r, err := t.checkNode(n.right, budget-1-l)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}
