package huffman

import (
	"errors"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/constraints"
)

// Errors reported when the API is used against a node that cannot satisfy
// the request.
var (
	// ErrNoNodes is returned by Build when given zero leaves.
	ErrNoNodes = errors.New("huffman: no nodes to build a tree from")

	// ErrNotLeaf is returned by Code when invoked on an internal node.
	ErrNotLeaf = errors.New("huffman: node is not a leaf")

	// ErrNoParent is returned by DirectionFromParent when invoked on a root.
	ErrNoParent = errors.New("huffman: node has no parent")
)

// Node represents one vertex of a Huffman tree.  The same type serves both
// as a leaf (carrying a symbol) and as an internal node (carrying only the
// combined weight of its subtree).
//
// The weight type W is any integer type; the symbol type V is arbitrary, and
// the algorithm never inspects it.
type Node[W constraints.Integer, V any] struct {
	// Weight holds the combined frequency of every symbol in this node's
	// subtree.
	Weight W

	// Value holds the symbol carried by a leaf.  Internal nodes carry the
	// zero value.
	Value V

	// Left and Right point at the child nodes.  Both are nil on a leaf and
	// both are non-nil on an internal node, never just one.
	Left  *Node[W, V]
	Right *Node[W, V]

	// Parent points back at the node's parent, or is nil on the root.  It
	// exists only so that codes can be read by walking toward the root; it
	// never drives downward traversal.
	Parent *Node[W, V]
}

// New constructs a leaf node with the given weight and symbol value.
//
// The weight is not validated: the optimality guarantee of Build only holds
// for non-negative weights, but negative weights are not rejected.
func New[W constraints.Integer, V any](weight W, value V) *Node[W, V] {
	return &Node[W, V]{Weight: weight, Value: value}
}

// Combine merges two nodes per Huffman's tree-building algorithm.  The left
// node should have weight <= that of the right node; if the weights are
// equal, left should be the node that has been queued longer.
//
// The new node's weight is the exact sum of the children's weights.  Setting
// Parent on both children is the only mutation Combine performs, and the
// only mutation anywhere in tree construction.
func Combine[W constraints.Integer, V any](left, right *Node[W, V]) *Node[W, V] {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")
	node := &Node[W, V]{Weight: left.Weight + right.Weight, Left: left, Right: right}
	left.Parent = node
	right.Parent = node
	return node
}

// IsLeaf reports whether this node is a leaf, i.e. has no children.
func (n *Node[W, V]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// DirectionFromParent returns '0' if this node is its parent's left child,
// or '1' if it is the right child.  Children are identified by pointer
// identity, never by weight, since two sibling subtrees may weigh the same.
//
// The root has no parent and therefore no direction; ErrNoParent is
// returned for it.
func (n *Node[W, V]) DirectionFromParent() (byte, error) {
	if n.Parent == nil {
		return 0, ErrNoParent
	}
	if n.Parent.Left == n {
		return '0', nil
	}
	return '1', nil
}

// Code returns the Huffman code for this leaf as a string of '0' and '1'
// characters.  The walk proceeds leaf to root, so the collected directions
// are reversed before they are returned.
//
// A leaf that is itself the root yields the empty string: a caller encoding
// a single distinct symbol must substitute a placeholder code, since an
// empty code cannot delimit occurrences in a bit stream.
func (n *Node[W, V]) Code() (string, error) {
	if !n.IsLeaf() {
		return "", ErrNotLeaf
	}
	var bits []byte
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		// cur has a parent here, so DirectionFromParent cannot fail.
		bit, _ := cur.DirectionFromParent()
		bits = append(bits, bit)
	}
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
	return string(bits), nil
}

// Depth returns the number of edges between this node and the root.  For a
// leaf this equals the length of its code.
func (n *Node[W, V]) Depth() int {
	depth := 0
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		depth++
	}
	return depth
}
