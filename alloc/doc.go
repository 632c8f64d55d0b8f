/*
Package alloc provides the allocator capability used by the container engines.

An allocator separates the acquisition of raw storage from the construction of
values within it. Engines first call Allocate to obtain storage for n slots,
then Construct each slot they want to bring to life, and Destroy every live
slot before handing the storage back with Deallocate. Storage handed out by
Allocate holds zero values; a zero slot is considered uninitialized until it
has been constructed.

Two allocators are provided:
  - Heap is the default allocator, backed by the Go heap.
  - Tracking wraps storage accounting and fault injection around Heap. It is
    meant for tests which need to verify that engines release everything they
    acquire, or that a failing construction leaves a container untouched.

BSD License
Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>
Please refer to the License file for details.
*/
package alloc

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
