package bst

// The navigation functions below operate on nodes alone, without access to
// the owning tree. The sentinel is found by walking parent links; it is the
// only node without a parent.
//
// Each exported function has an unexported counterpart taking the sentinel
// as an argument, which the tree engine and iterators use to avoid the walk.

// SentinelOf returns the sentinel of the tree n belongs to.
func SentinelOf[K, V any](n *Node[K, V]) *Node[K, V] {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// RootOf returns the root of the tree n belongs to. For an empty tree this is
// the sentinel.
func RootOf[K, V any](n *Node[K, V]) *Node[K, V] {
	return rootOf(n, SentinelOf(n))
}

func rootOf[K, V any](n, s *Node[K, V]) *Node[K, V] {
	if n == s {
		if s.left == s {
			return s
		}
		n = s.left
	}
	for n.parent != s {
		n = n.parent
	}
	return n
}

// Min returns the leftmost node of the subtree rooted at n, or n itself if n
// is the sentinel.
func Min[K, V any](n *Node[K, V]) *Node[K, V] {
	return minUnder(n, SentinelOf(n))
}

func minUnder[K, V any](n, s *Node[K, V]) *Node[K, V] {
	if n == s {
		return n
	}
	for n.left != s {
		n = n.left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n, or n itself if n
// is the sentinel.
func Max[K, V any](n *Node[K, V]) *Node[K, V] {
	return maxUnder(n, SentinelOf(n))
}

func maxUnder[K, V any](n, s *Node[K, V]) *Node[K, V] {
	if n == s {
		return n
	}
	for n.right != s {
		n = n.right
	}
	return n
}

// Predecessor returns the in-order predecessor of n.
//
// The predecessor of the sentinel is the maximum of the tree, the predecessor
// of the minimum is the sentinel.
func Predecessor[K, V any](n *Node[K, V]) *Node[K, V] {
	return predecessor(n, SentinelOf(n))
}

func predecessor[K, V any](n, s *Node[K, V]) *Node[K, V] {
	switch {
	case n == s:
		return s.right
	case n == s.left:
		return s
	case n.left != s:
		return maxUnder(n.left, s)
	}
	p := n.parent
	for p != s && n == p.left {
		n, p = p, p.parent
	}
	return p
}

// Successor returns the in-order successor of n.
//
// The successor of the maximum is the sentinel, the successor of the
// sentinel is the minimum of the tree.
func Successor[K, V any](n *Node[K, V]) *Node[K, V] {
	return successor(n, SentinelOf(n))
}

func successor[K, V any](n, s *Node[K, V]) *Node[K, V] {
	switch {
	case n == nil || n == s:
		return s.left
	case n == s.right:
		return s
	case n.right != s:
		return minUnder(n.right, s)
	}
	p := n.parent
	for p != s && n == p.right {
		n, p = p, p.parent
	}
	return p
}
