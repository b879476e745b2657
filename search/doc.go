// Package search provides shortest-path and reachability search over implicit
// graphs: graphs that are never materialized, whose edges are produced on demand
// by a caller-supplied successor function.
//
// What
//
//   - A state S is any comparable value (a grid cell, a cell plus facing, a cell
//     plus a remaining budget...). The engine only hashes states, compares them and
//     hands them back to caller functions.
//   - Edges come from a NeighborFunc, called lazily and exactly once per
//     finalized state.
//   - Costs are any integer or float type; every cost must be non-negative.
//   - Operations:
//   - ShortestDistance: minimal cost from any start to the first goal state.
//   - ShortestPath:     one optimal path and its cost.
//   - ReachableWithin:  every state whose minimal cost is ≤ a bound.
//   - Explore:          every reachable state with its minimal cost.
//   - OptimalStates:    every state lying on at least one optimal path.
//
// Modes
//
//   - ModeDijkstra (default): binary min-heap keyed by accumulated cost, lazy
//     decrease-key. A state may be pushed several times; only its first pop,
//     which carries its smallest cost, is acted upon.
//   - ModeBFS: plain FIFO queue; every edge cost must be exactly 1
//     (ErrNonUnitCost otherwise). On unit-cost graphs both modes return the
//     same distances; BFS is only faster.
//
// Determinism
//
//	Entries of equal cost leave the frontier in discovery order, so repeated
//	calls with a deterministic NeighborFunc return identical paths. When
//	several optimal paths exist, which one is returned is not part of the
//	contract.
//
// Exact-length reachability
//
//	The engine computes minimal distances only; a finalized state is never
//	re-enqueued. On bipartite graphs (4-connected grids) a state first reached
//	at distance d is reachable at any d+2k, so "reachable in exactly n steps"
//	reduces to "distance ≤ n with the parity of n": see ExactParity.
//
// Complexity (V = finalized states, E = edges examined)
//
//   - Dijkstra: O((V + E) log E) time, O(V + E) memory.
//   - BFS:      O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrNoStarts, ErrNilNeighbors, ErrNilGoal, ErrBadMaxCost: invalid input.
//   - ErrNegativeCost: an edge with negative cost was produced (checked before
//     the edge enters the frontier).
//   - ErrNonUnitCost: a non-unit cost was produced in ModeBFS.
//   - ErrNeighbors: wraps an error returned by the NeighborFunc.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrExpansionLimit: WithExpansionLimit was exceeded.
//   - ctx.Err() when the context passed through WithContext is done.
//
// A goal that is never reached is not an error: the operations report it
// through their ok result.
//
// Usage
//
//	dist, ok, err := search.ShortestDistance(
//	    []cell{start},
//	    neighbors,
//	    func(c cell) bool { return c == goal },
//	    search.WithMode(search.ModeBFS),
//	)
//
// Every call owns its frontier and distance maps, so calls may run
// concurrently. Each call emits one OpenTelemetry span ("search.<Op>") and
// records run/expansion/duration metrics through the configured providers.
package search
