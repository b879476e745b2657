package search

// execute builds the options, validates the common inputs, lets configure
// attach the operation-specific parts to the runner, and runs it.
//
// Validation order:
//  1. option violations (ErrOptionViolation),
//  2. empty starts (ErrNoStarts),
//  3. nil neighbors (ErrNilNeighbors),
//  4. whatever configure rejects (ErrNilGoal, ErrBadMaxCost).
func execute[S comparable, C Cost](
	op string,
	starts []S,
	neighbors NeighborFunc[S, C],
	opts []Option,
	configure func(r *runner[S, C]) error,
) (*runner[S, C], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tel := startTelemetry(cfg, op, len(starts))
	r, err := run(cfg, starts, neighbors, configure)
	found := false
	var stats runStats
	if r != nil {
		found = r.res.Found
		stats = r.stats
	}
	tel.finish(stats, found, err)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func run[S comparable, C Cost](
	cfg Options,
	starts []S,
	neighbors NeighborFunc[S, C],
	configure func(r *runner[S, C]) error,
) (*runner[S, C], error) {
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(starts) == 0 {
		return nil, ErrNoStarts
	}
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}

	r := newRunner(cfg, neighbors, len(starts))
	if configure != nil {
		if err := configure(r); err != nil {
			return nil, err
		}
	}
	r.init(starts)
	if err := r.process(); err != nil {
		return r, err
	}

	return r, nil
}

// ShortestDistance returns the minimal total cost from any start state to the
// first state satisfying isGoal. ok is false, with a nil error, when no
// reachable state satisfies isGoal.
//
// Multiple starts behave as one virtual zero-cost source. A start that is
// itself a goal yields (0, true, nil).
func ShortestDistance[S comparable, C Cost](
	starts []S,
	neighbors NeighborFunc[S, C],
	isGoal GoalFunc[S],
	opts ...Option,
) (dist C, ok bool, err error) {
	r, err := execute(opShortestDistance, starts, neighbors, opts, withGoal[S, C](isGoal))
	if err != nil || !r.res.Found {
		return dist, false, err
	}

	return r.res.Dist[r.res.Goal], true, nil
}

// ShortestPath returns one optimal path from a start state to a goal state,
// rebuilt from the recorded predecessors. The path's cost equals what
// ShortestDistance returns for the same inputs.
func ShortestPath[S comparable, C Cost](
	starts []S,
	neighbors NeighborFunc[S, C],
	isGoal GoalFunc[S],
	opts ...Option,
) (Path[S, C], bool, error) {
	r, err := execute(opShortestPath, starts, neighbors, opts, withGoal[S, C](isGoal))
	if err != nil || !r.res.Found {
		return Path[S, C]{}, false, err
	}

	states, err := r.res.PathTo(r.res.Goal)
	if err != nil {
		return Path[S, C]{}, false, err
	}

	return Path[S, C]{States: states, Cost: r.res.Dist[r.res.Goal]}, true, nil
}

// ReachableWithin returns every state whose minimal cost from any start is
// ≤ maxCost, with its finalized distance. States are never re-enqueued once
// finalized: this is minimal-distance reachability, not exact-length walks
// (see ExactParity).
func ReachableWithin[S comparable, C Cost](
	starts []S,
	neighbors NeighborFunc[S, C],
	maxCost C,
	opts ...Option,
) (*Result[S, C], error) {
	r, err := execute(opReachableWithin, starts, neighbors, opts, func(r *runner[S, C]) error {
		if maxCost < 0 {
			return ErrBadMaxCost
		}
		r.bounded = true
		r.maxCost = maxCost
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.res, nil
}

// Explore finalizes every state reachable from the starts. The graph must be
// finite from the caller's point of view; the engine has no bound of its own
// other than WithExpansionLimit.
func Explore[S comparable, C Cost](
	starts []S,
	neighbors NeighborFunc[S, C],
	opts ...Option,
) (*Result[S, C], error) {
	r, err := execute(opExplore, starts, neighbors, opts, nil)
	if err != nil {
		return nil, err
	}

	return r.res, nil
}

// OptimalStates returns the optimal goal cost, every goal finalized at that
// cost, and every state that lies on at least one optimal route to one of
// those goals. ok is false when no goal is reachable.
func OptimalStates[S comparable, C Cost](
	starts []S,
	neighbors NeighborFunc[S, C],
	isGoal GoalFunc[S],
	opts ...Option,
) (Optimum[S, C], bool, error) {
	r, err := execute(opOptimalStates, starts, neighbors, opts, func(r *runner[S, C]) error {
		if err := withGoal[S, C](isGoal)(r); err != nil {
			return err
		}
		r.allPreds = true
		return nil
	})
	if err != nil || !r.res.Found {
		return Optimum[S, C]{}, false, err
	}

	return r.optimal(), true, nil
}

func withGoal[S comparable, C Cost](isGoal GoalFunc[S]) func(r *runner[S, C]) error {
	return func(r *runner[S, C]) error {
		if isGoal == nil {
			return ErrNilGoal
		}
		r.isGoal = isGoal
		return nil
	}
}
