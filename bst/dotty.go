package bst

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[*Node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*Node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node *Node[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node *Node[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// fresh returns an id not bound to any node.
func (ids *nodeids[K, V]) fresh() int {
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Absent children are drawn as small empty circles. The sentinel is drawn as
// a box, with dashed edges to the cached minimum and maximum.
func ToDot[K, V any](t *Tree[K, V], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	s := t.sentinel
	sid := ids.alloc(s)
	fmt.Fprintf(&nodelist, "\"%d\" [label=\"end\",shape=box,style=filled,fillcolor=\"%s\"];\n", sid, hexcolors[0])
	var walk func(n *Node[K, V]) int
	walk = func(n *Node[K, V]) int {
		ID := ids.alloc(n)
		styles := nodeDotStyles(n == s.left || n == s.right)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%v\"%s];\n", ID, n.item.First, styles)
		for _, child := range [2]*Node[K, V]{n.left, n.right} {
			if child == s {
				nilid := ids.fresh()
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, walk(child))
		}
		return ID
	}
	if t.root != s {
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", sid, walk(t.root))
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [style=dashed,label=min];\n", sid, ids.find(s.left))
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [style=dashed,label=max];\n", sid, ids.find(s.right))
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(highlight bool) string {
	s := ",style=filled,color=black,shape=circle"
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[2])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[2])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66"}

var hexcolors = [...]string{"white", "#CCDDFF", "#a3d7e4", "#88BBFF", "#66AAFF"}
