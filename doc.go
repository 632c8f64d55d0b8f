/*
Package containers offers an ordered map and a dynamic array, built on
explicit storage management instead of Go's built-in map and slice growth.

Map

Map is an associative container of unique keys, kept in the order of a
key comparator. It is backed by an unbalanced binary search tree (package
bst) with a per-tree sentinel node, which marks the end position and caches
the minimum and maximum. Positions are bidirectional iterators:

    m := containers.NewMap[string, int]()
    m.Insert("b", 2)
    m.Insert("a", 1)
    for it := m.Begin(); !it.Equal(m.End()); it = it.Next() {
        fmt.Println(it.Key(), it.Value())
    }

As the tree is never rebalanced, inserting keys in sorted order degrades
lookups to linear time.

Vector

Vector is a sequence of elements in one contiguous block of storage (package
buffer). Capacity and length are distinct: appending to a full vector
doubles its capacity, and capacity never shrinks implicitly. Positions are
random access iterators. Vector{} is a valid, empty vector.

Both containers acquire their storage through an alloc.Allocator, which
defaults to the Go heap. Operations which have to allocate return an error;
operations which reallocate either succeed completely or leave the container
unchanged.

Neither container is safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the containers module
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrOutOfRange signals a checked access to an absent key or an index beyond
// the length of a vector.
const ErrOutOfRange = ContainerError("containers: out of range")

// ErrIllegalArguments signals that a container function has been called with
// illegal arguments, e.g. a position belonging to a different container.
const ErrIllegalArguments = ContainerError("containers: illegal arguments")

// traced reports err, if any, to the core tracer and returns it unchanged.
func traced(container, op string, err error) error {
	if err != nil {
		T().P(container, op).Errorf("%v", err)
	}
	return err
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
