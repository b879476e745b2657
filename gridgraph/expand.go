package gridgraph

import (
	"github.com/katalvlaran/gridpath/search"
)

// crossings returns 0/1 successors over every in-bounds neighbor according to
// gg.Conn: entering an open cell is free, entering a wall cell costs 1.
func (gg *GridGraph) crossings() search.NeighborFunc[Point, int] {
	return func(p Point) ([]search.Edge[Point, int], error) {
		out := make([]search.Edge[Point, int], 0, len(gg.offsets))
		for _, d := range gg.offsets {
			n := p.Add(d)
			if !gg.InBounds(n) {
				continue
			}
			step := 0
			if gg.IsWall(n) {
				step = 1
			}
			out = append(out, search.Edge[Point, int]{To: n, Cost: step})
		}
		return out, nil
	}
}

// MinWallCrossings returns the fewest wall cells that must be converted to
// connect from and to. The start cell itself is never counted; a wall target
// is. Every cell is reachable this way, so ok is true whenever err is nil.
//
// Behavior:
//  1. Validate both points.
//  2. Dijkstra over 0/1 edge costs: moving onto an open cell costs 0,
//     moving onto a wall cell costs 1.
//  3. Stop when to is finalized.
//
// Complexity: O(R·C · log(R·C)).
func (gg *GridGraph) MinWallCrossings(from, to Point, opts ...search.Option) (int, bool, error) {
	if err := gg.checkPoints(from, to); err != nil {
		return 0, false, err
	}
	return search.ShortestDistance([]Point{from}, gg.crossings(), at(to), withOptions(opts, search.WithMode(search.ModeDijkstra))...)
}

// WallCrossingPath is MinWallCrossings returning one optimal route as well.
func (gg *GridGraph) WallCrossingPath(from, to Point, opts ...search.Option) (search.Path[Point, int], bool, error) {
	if err := gg.checkPoints(from, to); err != nil {
		return search.Path[Point, int]{}, false, err
	}
	return search.ShortestPath([]Point{from}, gg.crossings(), at(to), withOptions(opts, search.WithMode(search.ModeDijkstra))...)
}
