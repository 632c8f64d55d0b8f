package bst

import "testing"

func TestNavigationOnDegenerateTree(t *testing.T) {
	tree := newIntTree(t, 1, 2, 3, 4, 5) // a right spine
	s := tree.Sentinel()
	if RootOf(s) != tree.Root() || RootOf(tree.Last()) != tree.Root() {
		t.Fatalf("expected RootOf to find the root from anywhere")
	}
	n := tree.First()
	for want := 1; want <= 5; want++ {
		if n.Key() != want {
			t.Fatalf("successor chain: got %d, want %d", n.Key(), want)
		}
		n = Successor(n)
	}
	if n != s || !n.IsSentinel() {
		t.Fatalf("expected chain to end at the sentinel")
	}
	for want := 5; want >= 1; want-- {
		n = Predecessor(n)
		if n.Key() != want {
			t.Fatalf("predecessor chain: got %d, want %d", n.Key(), want)
		}
	}
}

func TestRootOfEmptyTree(t *testing.T) {
	tree := newIntTree(t)
	if RootOf(tree.Sentinel()) != tree.Sentinel() {
		t.Fatalf("expected root of empty tree to be the sentinel")
	}
}
