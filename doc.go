// Package gridpath is a generic search engine for implicit graphs, plus
// ready-made adapters for character grids.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light toolkit built around one idea: describe your
//	state space with a successor function and let the engine do the rest.
//		• search: BFS and Dijkstra over any comparable state type
//		• search: bounded reachability, full exploration, all optimal routes
//		• gridgraph: grids, points, directions and successor builders
//		• gridgraph: regions, wall crossings, turn penalties, shortcuts
//
// ✨ Why choose gridpath?
//
//   - Generic – states are any comparable type, costs any integer or float type
//   - Deterministic – equal-cost ties break in discovery order
//   - Safe – every call owns its state; concurrent calls need no locks
//   - Observable – slog records plus OpenTelemetry spans and metrics per call
//
// Under the hood, everything is organized under two subpackages:
//
//	search/    the engine: ShortestDistance, ShortestPath, ReachableWithin,
//	           Explore, OptimalStates, ExactParity
//	gridgraph/ GridGraph, Point, Direction, Pose, Momentum, Phase and the
//	           queries built on the engine
//
// Quick example:
//
//	gg, _ := gridgraph.Parse(maze, gridgraph.DefaultGridOptions())
//	start, _ := gg.Find('S')
//	end, _ := gg.Find('E')
//	steps, ok, err := gg.ShortestSteps(start, end)
//
// Or, with your own state type:
//
//	d, ok, err := search.ShortestDistance(starts, neighbors, isGoal,
//		search.WithMode(search.ModeBFS))
package gridpath
