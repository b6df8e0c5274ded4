// Package pqueue provides the deterministic binary min-heap behind the A*
// solver.
//
// What:
//
//   - Queue orders items by f = g + h, breaking ties by lower h (closer to
//     goal) and then by insertion sequence, so extraction order is fully
//     reproducible for identical inputs.
//   - Push inserts in O(log n); Pop extracts the minimum in O(log n) and
//     fails with ErrEmptyQueue when the queue is empty.
//
// Why:
//
//   - A* needs a priority frontier with a pinned-down tie-break rule;
//     leaving ties to heap internals would make solve traces run-dependent.
//
// Decrease-key:
//
//   - The queue deliberately offers no decrease-key. Callers re-push an item
//     when its g improves and skip stale entries on extraction against their
//     own best-cost bookkeeping (lazy deletion). Memory grows with the
//     number of re-insertions, bounded by the edge count of the search.
//
// Errors:
//
//   - ErrEmptyQueue: Pop on an empty queue — a programming-contract
//     violation in the caller, never a user-facing condition.
package pqueue

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/mazegrid/grid"
)

// ErrEmptyQueue indicates Pop was called on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: extract from empty queue")

// Item is one frontier entry: a cell plus its path costs.
// F is always G+H; the queue computes it on Push.
type Item struct {
	Cell grid.Cell // grid position
	G    int       // accumulated cost from start
	H    int       // heuristic estimate to goal
	F    int       // total key: G + H
	seq  uint64    // insertion sequence, final tie-break
}

// Queue is a deterministic min-heap of Items. The zero value is ready to use.
// Not safe for concurrent use; a solve invocation owns its queue exclusively.
type Queue struct {
	items itemHeap
	seq   uint64
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Len returns the number of queued items, stale entries included.
// Complexity: O(1).
func (q *Queue) Len() int {
	return q.items.Len()
}

// Push inserts cell c with accumulated cost g and heuristic estimate h.
// Complexity: O(log n).
func (q *Queue) Push(c grid.Cell, g, h int) {
	q.seq++
	heap.Push(&q.items, Item{Cell: c, G: g, H: h, F: g + h, seq: q.seq})
}

// Pop removes and returns the minimum-key item, ordered by (F, H, seq).
// Returns ErrEmptyQueue when the queue is empty.
// Complexity: O(log n).
func (q *Queue) Pop() (Item, error) {
	if q.items.Len() == 0 {
		return Item{}, ErrEmptyQueue
	}

	return heap.Pop(&q.items).(Item), nil
}

// itemHeap implements heap.Interface over Items.
type itemHeap []Item

// Len returns the number of items in the heap. Complexity: O(1).
func (h itemHeap) Len() int { return len(h) }

// Less orders by F, then H, then insertion sequence. Complexity: O(1).
func (h itemHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	if h[i].H != h[j].H {
		return h[i].H < h[j].H
	}

	return h[i].seq < h[j].seq
}

// Swap swaps elements at indices i and j. Complexity: O(1).
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new Item. Called by heap.Push. Complexity: O(log n) amortized.
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

// Pop removes and returns the minimum Item. Called by heap.Pop.
// Complexity: O(log n) amortized.
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
