package search

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Result holds the outcome of an exploration:
//   - Order: states in finalization order (non-decreasing cost).
//   - Dist:  finalized minimal cost per reached state.
//   - Prev:  predecessor of each non-start state on one optimal path.
//   - Goal:  the first goal state finalized, valid when Found is true.
type Result[S comparable, C Cost] struct {
	Order []S
	Dist  map[S]C
	Prev  map[S]S
	Goal  S
	Found bool
}

func newResult[S comparable, C Cost](hint int) *Result[S, C] {
	return &Result[S, C]{
		Order: make([]S, 0, hint),
		Dist:  make(map[S]C, hint),
		Prev:  make(map[S]S, hint),
	}
}

// Len returns the number of finalized states.
func (r *Result[S, C]) Len() int { return len(r.Dist) }

// Reached reports whether s was finalized.
func (r *Result[S, C]) Reached(s S) bool {
	_, ok := r.Dist[s]
	return ok
}

// Distance returns the minimal cost of s and whether s was reached.
func (r *Result[S, C]) Distance(s S) (C, bool) {
	d, ok := r.Dist[s]
	return d, ok
}

// States returns the set of finalized states.
func (r *Result[S, C]) States() map[S]struct{} {
	set := make(map[S]struct{}, len(r.Dist))
	for s := range r.Dist {
		set[s] = struct{}{}
	}
	return set
}

// Within returns, in finalization order, the states whose cost is ≤ maxCost.
func (r *Result[S, C]) Within(maxCost C) []S {
	out := make([]S, 0, len(r.Order))
	for _, s := range r.Order {
		if r.Dist[s] <= maxCost {
			out = append(out, s)
		}
	}
	return out
}

// PathTo reconstructs the path from a start state to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[S, C]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ExactParity returns the reached states that are reachable in exactly n unit
// steps on a bipartite graph: distance ≤ n with the same parity as n.
// The result is in finalization order.
func ExactParity[S comparable, C constraints.Integer](r *Result[S, C], n C) []S {
	out := make([]S, 0, len(r.Order))
	for _, s := range r.Order {
		d := r.Dist[s]
		if d <= n && (n-d)%2 == 0 {
			out = append(out, s)
		}
	}
	return out
}

// Path is one optimal route, start first, goal last.
type Path[S comparable, C Cost] struct {
	States []S
	Cost   C
}

// Len returns the number of edges on the path.
func (p Path[S, C]) Len() int {
	if len(p.States) == 0 {
		return 0
	}
	return len(p.States) - 1
}

// Optimum describes every optimal route to the goal set.
//   - Cost:   the optimal cost.
//   - Goals:  every goal state finalized at that cost.
//   - States: every state lying on at least one optimal route.
type Optimum[S comparable, C Cost] struct {
	Cost   C
	Goals  []S
	States map[S]struct{}
}
