package huffman

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Leaves returns every leaf in the subtree rooted at n, in left-to-right
// order.  A leaf returns itself.
func (n *Node[W, V]) Leaves() []*Node[W, V] {
	var leaves []*Node[W, V]
	stack := []*Node[W, V]{n}
	for len(stack) != 0 {
		last := len(stack) - 1
		cur := stack[last]
		stack = stack[:last]
		if cur.IsLeaf() {
			leaves = append(leaves, cur)
			continue
		}
		stack = append(stack, cur.Right, cur.Left)
	}
	return leaves
}

// Codes returns the symbol-to-code mapping for the tree rooted at root,
// one entry per leaf.  This is the table a downstream encoder consumes.
//
// If two leaves carry equal values, the later one in left-to-right order
// wins.  A single-leaf tree maps its value to the empty string; see
// Node.Code for the placeholder a caller must substitute in that case.
func Codes[W constraints.Integer, V comparable](root *Node[W, V]) map[V]string {
	leaves := root.Leaves()
	codes := make(map[V]string, len(leaves))
	for _, leaf := range leaves {
		// Leaves returns leaves only, so Code cannot fail.
		code, _ := leaf.Code()
		codes[leaf.Value] = code
	}
	return codes
}

// WeightedPathLength returns the sum over all leaves of weight times depth.
// This is the quantity Huffman's algorithm minimizes: for a fixed multiset
// of leaf weights, no binary tree has a smaller one than the tree Build
// returns.
func WeightedPathLength[W constraints.Integer, V any](root *Node[W, V]) W {
	var total W
	for _, leaf := range root.Leaves() {
		total += leaf.Weight * W(leaf.Depth())
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the subtree rooted at
// n to the given writer.  Each line names a vertex by its code prefix.
func (n *Node[W, V]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Node{\n")
	n.dump(&buf, "")
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node[W, V]) dump(buf *bytes.Buffer, path string) {
	if n.IsLeaf() {
		fmt.Fprintf(buf, "\tleaf %q: weight=%d value=%v\n", path, n.Weight, n.Value)
		return
	}
	fmt.Fprintf(buf, "\tnode %q: weight=%d\n", path, n.Weight)
	n.Left.dump(buf, path+"0")
	n.Right.dump(buf, path+"1")
}
