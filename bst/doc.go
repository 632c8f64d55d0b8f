/*
Package bst provides the tree engine behind the ordered map: an unbalanced,
parent-linked binary search tree with a per-tree sentinel node.

The sentinel is a node like every other, but it carries no payload of
interest. It serves three purposes:
  - it is the parent of the root and thus the only node with a nil parent,
  - it is the "off-tree" position returned by End,
  - its left and right links cache the minimum and maximum node of the tree.

Every absent child link of a real node points to the sentinel. An empty tree
has its root and both cache links set to the sentinel itself.

The tree is not rebalanced. Worst-case operations are linear in the number of
nodes, e.g. after inserting keys in sorted order. Nodes are acquired from and
returned to an alloc.Allocator, which is where allocation failures originate.

The tree is not safe for concurrent use.

BSD License
Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>
Please refer to the License file for details.
*/
package bst

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
