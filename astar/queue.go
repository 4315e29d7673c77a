package astar

import "github.com/katalvlaran/peakpath/core"

// entry is one open-set record. seq is the push order and breaks f ties FIFO.
type entry struct {
	node core.NodeIndex
	f    float32
	seq  uint64
}

// openSet is a min-heap of entries ordered by f, then seq.
// It uses the lazy decrease-key pattern: a node may be present several times,
// and all but its cheapest entry are skipped when popped after the node is visited.
type openSet []entry

// Len returns the number of entries in the heap.
func (q openSet) Len() int { return len(q) }

// Less orders by f ascending; equal f falls back to insertion order.
func (q openSet) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two entries.
func (q openSet) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x, which must be an entry. Called by heap.Push.
func (q *openSet) Push(x interface{}) { *q = append(*q, x.(entry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (q *openSet) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
