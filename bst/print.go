package bst

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	extremeColor  = color.New(color.FgBlue, color.Bold)
	sentinelColor = color.New(color.FgHiBlack)
)

// Fprint writes an indented, sideways rendering of t to w, right subtrees
// on top. The cached minimum and maximum are highlighted when w is a color
// capable terminal.
func Fprint[K, V any](w io.Writer, t *Tree[K, V]) {
	s := t.sentinel
	if t.root == s {
		sentinelColor.Fprintln(w, "(empty)")
		return
	}
	var walk func(n *Node[K, V], depth int)
	walk = func(n *Node[K, V], depth int) {
		if n == s {
			return
		}
		walk(n.right, depth+1)
		indent := strings.Repeat("    ", depth)
		label := fmt.Sprintf("%v", n.item.First)
		switch {
		case n == s.left && n == s.right:
			fmt.Fprint(w, indent)
			extremeColor.Fprintln(w, label+" [min,max]")
		case n == s.left:
			fmt.Fprint(w, indent)
			extremeColor.Fprintln(w, label+" [min]")
		case n == s.right:
			fmt.Fprint(w, indent)
			extremeColor.Fprintln(w, label+" [max]")
		default:
			fmt.Fprintln(w, indent+label)
		}
		walk(n.left, depth+1)
	}
	walk(t.root, 0)
}
