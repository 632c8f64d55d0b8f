package bst

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/containers/alloc"
)

// Config configures a tree.
type Config[K, V any] struct {
	// Less is the key comparator. It must establish a strict weak ordering;
	// violations are not detected and yield undefined traversal results.
	Less func(a, b K) bool
	// Allocator acquires and releases nodes. Defaults to alloc.Heap.
	Allocator alloc.Allocator[Node[K, V]]
}

// OrderedConfig returns a configuration for keys with a natural ordering.
func OrderedConfig[K cmp.Ordered, V any]() Config[K, V] {
	return Config[K, V]{Less: cmp.Less[K]}
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.Allocator == nil {
		cfg.Allocator = alloc.Heap[Node[K, V]]{}
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: key comparator is required", ErrInvalidConfig)
	}
	return nil
}
