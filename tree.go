package huffman

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Build constructs a Huffman tree from the given leaves and returns its
// root.  Every input node becomes a leaf of the returned tree, reachable
// through Left/Right references; a single input node is returned unchanged,
// serving as both leaf and root.
//
// Construction repeatedly removes the two lightest nodes from a min-priority
// queue and pushes their combination back, until one node remains.  Ties on
// weight are broken in favor of the node that entered the queue first, so
// the same input sequence always produces the same tree shape and the same
// codes.  Nodes produced by combining re-enter the queue with fresh
// sequence numbers.
//
// Build returns ErrNoNodes when leaves is empty.
func Build[W constraints.Integer, V any](leaves []*Node[W, V]) (*Node[W, V], error) {
	if len(leaves) == 0 {
		return nil, ErrNoNodes
	}

	q := &mergeQueue[W, V]{list: make([]queueItem[W, V], 0, len(leaves))}
	for _, n := range leaves {
		q.list = append(q.list, queueItem[W, V]{node: n, seq: q.nextSeq})
		q.nextSeq++
	}
	q.Init()

	for q.Len() > 1 {
		left := heap.Pop(q).(queueItem[W, V]).node
		right := heap.Pop(q).(queueItem[W, V]).node
		q.insert(Combine(left, right))
	}
	return heap.Pop(q).(queueItem[W, V]).node, nil
}

// type queueItem + type mergeQueue {{{

// queueItem pairs a node with the sequence number assigned when it entered
// the queue.
type queueItem[W constraints.Integer, V any] struct {
	node *Node[W, V]
	seq  uint64
}

// mergeQueue is a min-priority queue ordered by weight ascending, ties
// broken by sequence number ascending, i.e. among equal weights the node
// that has been waiting longest wins.  The sequence counter starts at 0 and
// increments once per insertion.
type mergeQueue[W constraints.Integer, V any] struct {
	list    []queueItem[W, V]
	nextSeq uint64
}

func (q *mergeQueue[W, V]) Init() {
	heap.Init(q)
}

func (q *mergeQueue[W, V]) insert(n *Node[W, V]) {
	item := queueItem[W, V]{node: n, seq: q.nextSeq}
	q.nextSeq++
	heap.Push(q, item)
}

func (q *mergeQueue[W, V]) Len() int {
	return len(q.list)
}

func (q *mergeQueue[W, V]) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *mergeQueue[W, V]) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (q *mergeQueue[W, V]) Push(x any) {
	q.list = append(q.list, x.(queueItem[W, V]))
}

func (q *mergeQueue[W, V]) Pop() any {
	last := len(q.list) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*mergeQueue[int, string])(nil)

// }}}
