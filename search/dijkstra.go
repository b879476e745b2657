package search

import "container/heap"

// entry is one frontier record: a state, the tentative cost it was pushed
// with, and a discovery sequence number used to break cost ties.
type entry[S comparable, C Cost] struct {
	state S
	cost  C
	seq   uint64
}

// frontier is the exploration structure owned by a single runner.
type frontier[S comparable, C Cost] interface {
	push(e entry[S, C])
	pop() entry[S, C]
	len() int
}

func newFrontier[S comparable, C Cost](mode Mode, hint int) frontier[S, C] {
	if mode == ModeBFS {
		return &fifo[S, C]{items: make([]entry[S, C], 0, hint)}
	}
	h := make(costHeap[S, C], 0, hint)
	return &h
}

// costHeap is a min-heap of entries ordered by cost, then by discovery order.
// We use the lazy-decrease-key approach: a cheaper route to a state pushes a
// new entry, and the outdated one is discarded when popped.
type costHeap[S comparable, C Cost] []entry[S, C]

// Len returns the number of items in the heap.
func (h costHeap[S, C]) Len() int { return len(h) }

// Less orders by cost; equal costs keep discovery order.
func (h costHeap[S, C]) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h costHeap[S, C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[S, C].
func (h *costHeap[S, C]) Push(x any) { *h = append(*h, x.(entry[S, C])) }

// Pop is called by heap.Pop.
func (h *costHeap[S, C]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[S, C]{}
	*h = old[:n-1]

	return item
}

func (h *costHeap[S, C]) push(e entry[S, C]) { heap.Push(h, e) }

func (h *costHeap[S, C]) pop() entry[S, C] { return heap.Pop(h).(entry[S, C]) }

func (h *costHeap[S, C]) len() int { return len(*h) }
