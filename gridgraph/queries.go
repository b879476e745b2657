package gridgraph

import (
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/search"
)

// at returns a goal predicate matching one point.
func at(target Point) search.GoalFunc[Point] {
	return func(p Point) bool { return p == target }
}

// withOptions returns a fresh slice of the caller's options followed by
// pinned, so pinned values win without touching the caller's backing array.
func withOptions(opts []search.Option, pinned ...search.Option) []search.Option {
	out := make([]search.Option, 0, len(opts)+len(pinned))
	out = append(out, opts...)
	return append(out, pinned...)
}

// ShortestSteps returns the fewest unit steps between two points, moving only
// through open cells according to gg.Conn. ok is false when to cannot be
// reached.
func (gg *GridGraph) ShortestSteps(from, to Point, opts ...search.Option) (int, bool, error) {
	if err := gg.checkPoints(from, to); err != nil {
		return 0, false, err
	}
	return search.ShortestDistance([]Point{from}, gg.Steps(), at(to), withOptions(opts, search.WithMode(search.ModeBFS))...)
}

// ReachableExactly counts the cells that can be occupied after exactly steps
// unit moves from start, revisits allowed. Since any cell reached in d steps
// can be re-entered every two steps, these are the cells at distance
// d <= steps with d and steps of equal parity.
func (gg *GridGraph) ReachableExactly(start Point, steps int, opts ...search.Option) (int, error) {
	if err := gg.checkPoints(start); err != nil {
		return 0, err
	}
	if steps < 0 {
		return 0, fmt.Errorf("%w: steps=%d", ErrBadArgument, steps)
	}
	res, err := search.ReachableWithin([]Point{start}, gg.Steps(), steps, withOptions(opts, search.WithMode(search.ModeBFS))...)
	if err != nil {
		return 0, err
	}
	return len(search.ExactParity(res, steps)), nil
}

// OptimalTiles finds the cheapest turn-penalty route from any start pose to
// end, in any final heading, and counts the distinct cells lying on at least
// one route of that cost. ok is false when end cannot be reached.
func (gg *GridGraph) OptimalTiles(starts []Pose, end Point, forward, turn int, opts ...search.Option) (cost, tiles int, ok bool, err error) {
	for _, s := range starts {
		if err = gg.checkPoints(s.At); err != nil {
			return 0, 0, false, err
		}
	}
	if err = gg.checkPoints(end); err != nil {
		return 0, 0, false, err
	}

	opt, ok, err := search.OptimalStates(starts, gg.TurnMoves(forward, turn),
		func(p Pose) bool { return p.At == end }, withOptions(opts, search.WithMode(search.ModeDijkstra))...)
	if err != nil || !ok {
		return 0, 0, false, err
	}

	cells := make(map[Point]struct{}, len(opt.States))
	for s := range opt.States {
		cells[s.At] = struct{}{}
	}
	return opt.Cost, len(cells), true, nil
}

// CrucibleLoss returns the cheapest total weight of the cells entered on a
// route from start to end under CrucibleMoves rules, weights read as digits.
// The route may leave start in any direction and must arrive having moved at
// least minRun cells straight.
func (gg *GridGraph) CrucibleLoss(start, end Point, minRun, maxRun int, opts ...search.Option) (int, bool, error) {
	if err := gg.checkPoints(start, end); err != nil {
		return 0, false, err
	}
	moves, err := gg.CrucibleMoves(minRun, maxRun, DigitWeight)
	if err != nil {
		return 0, false, err
	}
	goal := func(m Momentum) bool { return m.At == end && m.Run >= minRun }
	return search.ShortestDistance([]Momentum{{At: start}}, moves, goal, withOptions(opts, search.WithMode(search.ModeDijkstra))...)
}

// Energized counts the distinct cells a beam entering start.At heading
// start.Facing passes through, following BeamMoves.
func (gg *GridGraph) Energized(start Pose, opts ...search.Option) (int, error) {
	if err := gg.checkPoints(start.At); err != nil {
		return 0, err
	}
	res, err := search.Explore([]Pose{start}, gg.BeamMoves(), withOptions(opts, search.WithMode(search.ModeBFS))...)
	if err != nil {
		return 0, err
	}

	cells := make(map[Point]struct{}, res.Len())
	for s := range res.Dist {
		cells[s.At] = struct{}{}
	}
	return len(cells), nil
}

// edgeEntries lists every pose that enters the grid from outside, clockwise
// from the top row.
func (gg *GridGraph) edgeEntries() []Pose {
	out := make([]Pose, 0, 2*(gg.Rows+gg.Cols))
	for c := 0; c < gg.Cols; c++ {
		out = append(out, Pose{At: Point{0, c}, Facing: South})
	}
	for r := 0; r < gg.Rows; r++ {
		out = append(out, Pose{At: Point{r, gg.Cols - 1}, Facing: West})
	}
	for c := 0; c < gg.Cols; c++ {
		out = append(out, Pose{At: Point{gg.Rows - 1, c}, Facing: North})
	}
	for r := 0; r < gg.Rows; r++ {
		out = append(out, Pose{At: Point{r, 0}, Facing: East})
	}
	return out
}

// MaxEnergized returns the largest Energized count over every beam entering
// the grid from its border. Entries are simulated concurrently and honour the
// context given with search.WithContext.
func (gg *GridGraph) MaxEnergized(opts ...search.Option) (int, error) {
	cfg := search.DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	entries := gg.edgeEntries()
	counts := make([]int, len(entries))

	g, ctx := errgroup.WithContext(cfg.Ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entries {
		g.Go(func() (err error) {
			counts[i], err = gg.Energized(e, withOptions(opts, search.WithContext(ctx))...)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return slices.Max(counts), nil
}
