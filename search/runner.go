package search

import (
	"fmt"
	"log/slog"
)

// runStats counts the work done by one runner.
type runStats struct {
	popped   int
	expanded int
	pushed   int
}

// runner holds the mutable state for a single search call. Nothing in it
// outlives the call.
type runner[S comparable, C Cost] struct {
	cfg       Options
	neighbors NeighborFunc[S, C]

	isGoal  GoalFunc[S] // nil: no early exit
	bounded bool        // true: prune costs above maxCost
	maxCost C
	// allPreds records every equal-cost predecessor and keeps exploring until
	// the frontier minimum exceeds the optimal goal cost.
	allPreds bool

	frontier frontier[S, C]
	best     map[S]C    // tentative cost per discovered state
	done     map[S]bool // finalized states
	preds    map[S][]S  // allPreds only
	goals    []S        // allPreds only
	seq      uint64

	res   *Result[S, C]
	stats runStats
}

func newRunner[S comparable, C Cost](cfg Options, neighbors NeighborFunc[S, C], hint int) *runner[S, C] {
	return &runner[S, C]{
		cfg:       cfg,
		neighbors: neighbors,
		frontier:  newFrontier[S, C](cfg.Mode, hint),
		best:      make(map[S]C, hint),
		done:      make(map[S]bool, hint),
		res:       newResult[S, C](hint),
	}
}

// init seeds the frontier and the tentative costs with every start at cost 0.
// Duplicate starts are pushed once.
func (r *runner[S, C]) init(starts []S) {
	if r.allPreds {
		r.preds = make(map[S][]S)
	}
	var zero C
	for _, s := range starts {
		if _, seen := r.best[s]; seen {
			continue
		}
		r.best[s] = zero
		r.push(s, zero)
	}
}

func (r *runner[S, C]) push(s S, cost C) {
	r.frontier.push(entry[S, C]{state: s, cost: cost, seq: r.seq})
	r.seq++
	r.stats.pushed++
}

// process is the exploration loop. It terminates when:
//   - a goal is finalized (unless allPreds is set),
//   - the frontier minimum exceeds the optimal goal cost (allPreds),
//   - the frontier is empty,
//   - the expansion limit is hit or the context is done (error).
func (r *runner[S, C]) process() error {
	ctx := r.cfg.Ctx
	for r.frontier.len() > 0 {
		// cancellation check (once every contextCheckInterval pops)
		if r.stats.popped%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		e := r.frontier.pop()
		r.stats.popped++

		// stale entry: finalized already, or superseded by a cheaper push
		if r.done[e.state] || e.cost > r.best[e.state] {
			continue
		}
		if r.allPreds && r.res.Found && e.cost > r.res.Dist[r.res.Goal] {
			break
		}

		// finalize
		r.done[e.state] = true
		r.res.Dist[e.state] = e.cost
		r.res.Order = append(r.res.Order, e.state)

		if r.isGoal != nil && r.isGoal(e.state) {
			if !r.res.Found {
				r.res.Found = true
				r.res.Goal = e.state
			}
			if !r.allPreds {
				return nil
			}
			r.goals = append(r.goals, e.state)
		}

		if r.cfg.ExpansionLimit > 0 && r.stats.expanded >= r.cfg.ExpansionLimit {
			return fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, r.stats.expanded)
		}
		if err := r.relax(e.state, e.cost); err != nil {
			return err
		}
	}

	return nil
}

// relax expands the finalized state u and tries to improve every successor.
// Costs are validated before anything enters the frontier.
func (r *runner[S, C]) relax(u S, du C) error {
	edges, err := r.neighbors(u)
	if err != nil {
		return fmt.Errorf("%w: state %v: %w", ErrNeighbors, u, err)
	}
	r.stats.expanded++

	for _, e := range edges {
		// NaN fails this too
		if !(e.Cost >= 0) {
			r.cfg.Logger.Warn("negative edge cost", slog.Any("from", u), slog.Any("to", e.To), slog.Any("cost", e.Cost))
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, u, e.To, e.Cost)
		}
		if r.cfg.Mode == ModeBFS && e.Cost != 1 {
			r.cfg.Logger.Warn("non-unit edge cost in bfs mode", slog.Any("from", u), slog.Any("to", e.To), slog.Any("cost", e.Cost))
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNonUnitCost, u, e.To, e.Cost)
		}

		nd := du + e.Cost
		if r.bounded && nd > r.maxCost {
			continue
		}

		if r.done[e.To] {
			// zero-cost ties can still point at a finalized state
			if r.allPreds && nd == r.res.Dist[e.To] {
				r.preds[e.To] = append(r.preds[e.To], u)
			}
			continue
		}

		old, seen := r.best[e.To]
		switch {
		case !seen || nd < old:
			r.best[e.To] = nd
			r.res.Prev[e.To] = u
			if r.allPreds {
				r.preds[e.To] = append(r.preds[e.To][:0], u)
			}
			r.push(e.To, nd)
		case nd == old && r.allPreds:
			r.preds[e.To] = append(r.preds[e.To], u)
		}
	}

	return nil
}

// optimal walks the recorded predecessor sets back from every optimal goal.
func (r *runner[S, C]) optimal() Optimum[S, C] {
	out := Optimum[S, C]{
		Cost:   r.res.Dist[r.res.Goal],
		Goals:  r.goals,
		States: make(map[S]struct{}),
	}
	stack := append([]S(nil), r.goals...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := out.States[s]; ok {
			continue
		}
		out.States[s] = struct{}{}
		for _, p := range r.preds[s] {
			if _, ok := out.States[p]; !ok {
				stack = append(stack, p)
			}
		}
	}

	return out
}
