package search

// compactThreshold is the number of consumed slots after which the FIFO
// buffer is shifted down.
const compactThreshold = 1024

// fifo is the BFS frontier. With unit costs, entries leave in non-decreasing
// cost order, which is what lets BFS finalize a state on first pop.
type fifo[S comparable, C Cost] struct {
	items []entry[S, C]
	head  int
}

func (q *fifo[S, C]) push(e entry[S, C]) { q.items = append(q.items, e) }

func (q *fifo[S, C]) pop() entry[S, C] {
	e := q.items[q.head]
	q.items[q.head] = entry[S, C]{}
	q.head++
	if q.head >= compactThreshold && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return e
}

func (q *fifo[S, C]) len() int { return len(q.items) - q.head }
