package search_test

import (
	"github.com/katalvlaran/gridpath/search"
)

// cell is a grid coordinate used as a search state in tests.
type cell struct{ r, c int }

var deltas = [4]cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} // E, S, W, N

// openGrid returns 4-connected unit-cost neighbors over a rows×cols grid,
// skipping the given wall cells.
func openGrid(rows, cols int, walls ...cell) search.NeighborFunc[cell, int] {
	blocked := make(map[cell]bool, len(walls))
	for _, w := range walls {
		blocked[w] = true
	}
	return func(s cell) ([]search.Edge[cell, int], error) {
		out := make([]search.Edge[cell, int], 0, 4)
		for _, d := range deltas {
			n := cell{s.r + d.r, s.c + d.c}
			if n.r < 0 || n.r >= rows || n.c < 0 || n.c >= cols || blocked[n] {
				continue
			}
			out = append(out, search.Edge[cell, int]{To: n, Cost: 1})
		}
		return out, nil
	}
}

// weightedGrid is like openGrid but entering a cell costs weight(cell).
func weightedGrid(rows, cols int, weight func(cell) int) search.NeighborFunc[cell, int] {
	return func(s cell) ([]search.Edge[cell, int], error) {
		out := make([]search.Edge[cell, int], 0, 4)
		for _, d := range deltas {
			n := cell{s.r + d.r, s.c + d.c}
			if n.r < 0 || n.r >= rows || n.c < 0 || n.c >= cols {
				continue
			}
			out = append(out, search.Edge[cell, int]{To: n, Cost: weight(n)})
		}
		return out, nil
	}
}

// adjacency turns an explicit adjacency map into a NeighborFunc.
func adjacency[S comparable, C search.Cost](adj map[S][]search.Edge[S, C]) search.NeighborFunc[S, C] {
	return func(s S) ([]search.Edge[S, C], error) {
		return adj[s], nil
	}
}

// is returns a goal predicate matching exactly target.
func is[S comparable](target S) search.GoalFunc[S] {
	return func(s S) bool { return s == target }
}

// pathCost sums the cost of consecutive edges of path as produced by neighbors.
// ok is false when two consecutive states are not connected.
func pathCost[S comparable](neighbors search.NeighborFunc[S, int], path []S) (int, bool) {
	total := 0
	for i := 1; i < len(path); i++ {
		edges, err := neighbors(path[i-1])
		if err != nil {
			return 0, false
		}
		best, found := 0, false
		for _, e := range edges {
			if e.To == path[i] && (!found || e.Cost < best) {
				best, found = e.Cost, true
			}
		}
		if !found {
			return 0, false
		}
		total += best
	}
	return total, true
}
