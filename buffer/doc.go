/*
Package buffer provides the storage engine behind the dynamic array: a
contiguous, capacity-doubling buffer with explicit construction and
destruction of elements.

A Buffer owns one block of storage obtained from an alloc.Allocator. The
first Len slots of the block hold live elements, the remaining Cap-Len slots
are allocated but uninitialized. Elements are brought to life with the
allocator's Construct and ended with Destroy, before storage is handed back.

Growth policy: a single append or insert which does not fit doubles the
capacity (a zero capacity grows to 1). Bulk insertions grow to twice the
current size or capacity, or to the exact requirement if that is larger.

Operations which have to reallocate build the new block completely before
releasing the old one. They either succeed or leave the buffer unchanged.
Operations working in place (capacity suffices) shift elements by assignment
and, if constructing a new slot fails, leave the buffer valid but possibly
with a different element sequence.

The zero value of Buffer is an empty buffer using alloc.Heap.

BSD License
Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>
Please refer to the License file for details.
*/
package buffer

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
