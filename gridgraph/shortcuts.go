package gridgraph

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/search"
)

// Shortcuts counts the wall-phasing shortcuts on the route from start to end
// that save at least minSaving steps. A shortcut leaves the track at an open
// cell a reached from start, ignores walls for up to radius steps, and lands
// on an open cell b from which end is reachable. Its length is
// dist(start,a) + |a-b| + dist(b,end); each (a, b) pair counts once.
//
// The two distance fields come from concurrent BFS explorations; the pair
// scan is split by row across GOMAXPROCS goroutines. Both phases honour the
// context given with search.WithContext.
//
// Returns ErrUnreachable when end cannot be reached without shortcuts.
func (gg *GridGraph) Shortcuts(start, end Point, radius, minSaving int, opts ...search.Option) (int, error) {
	if err := gg.checkPoints(start, end); err != nil {
		return 0, err
	}
	if radius < 0 || minSaving < 1 {
		return 0, fmt.Errorf("%w: radius=%d minSaving=%d", ErrBadArgument, radius, minSaving)
	}

	cfg := search.DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	bfs := withOptions(opts, search.WithMode(search.ModeBFS))

	// both distance fields are independent searches
	var fromStart, toEnd *search.Result[Point, int]
	g, ctx := errgroup.WithContext(cfg.Ctx)
	g.Go(func() (err error) {
		fromStart, err = search.Explore([]Point{start}, gg.Steps(), withOptions(bfs, search.WithContext(ctx))...)
		return err
	})
	g.Go(func() (err error) {
		toEnd, err = search.Explore([]Point{end}, gg.Steps(), withOptions(bfs, search.WithContext(ctx))...)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	best, ok := fromStart.Distance(end)
	if !ok {
		return 0, fmt.Errorf("%w: %v from %v", ErrUnreachable, end, start)
	}
	ds, de := gg.distanceField(fromStart), gg.distanceField(toEnd)

	g, ctx = errgroup.WithContext(cfg.Ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	counts := make([]int, gg.Rows)
	for r := 0; r < gg.Rows; r++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[r] = gg.shortcutsFromRow(r, ds, de, best, radius, minSaving)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// shortcutsFromRow counts qualifying shortcuts whose entry cell is on row r.
func (gg *GridGraph) shortcutsFromRow(r int, ds, de []int, best, radius, minSaving int) int {
	n := 0
	for c := 0; c < gg.Cols; c++ {
		a := Point{r, c}
		da := ds[gg.index(a)]
		if da < 0 {
			continue
		}
		for dr := -radius; dr <= radius; dr++ {
			rem := radius - abs(dr)
			for dc := -rem; dc <= rem; dc++ {
				b := Point{r + dr, c + dc}
				if !gg.InBounds(b) {
					continue
				}
				db := de[gg.index(b)]
				if db < 0 {
					continue
				}
				if best-(da+abs(dr)+abs(dc)+db) >= minSaving {
					n++
				}
			}
		}
	}
	return n
}

// distanceField flattens res into a row-major slice, -1 for unreached cells.
func (gg *GridGraph) distanceField(res *search.Result[Point, int]) []int {
	field := make([]int, gg.Rows*gg.Cols)
	for i := range field {
		field[i] = -1
	}
	for p, d := range res.Dist {
		field[gg.index(p)] = d
	}
	return field
}
