package buffer

import (
	"fmt"

	"github.com/npillmayer/containers/alloc"
)

// Config configures a buffer.
type Config[T any] struct {
	// Allocator acquires and releases storage. Defaults to alloc.Heap.
	Allocator alloc.Allocator[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Allocator == nil {
		cfg.Allocator = alloc.Heap[T]{}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Allocator != nil && cfg.Allocator.MaxSize() <= 0 {
		return fmt.Errorf("%w: allocator cannot provide any storage", ErrInvalidConfig)
	}
	return nil
}
