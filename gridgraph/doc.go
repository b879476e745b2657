// Package gridgraph treats a rectangular character grid as an implicit graph
// and runs the search engine over it.
//
// What:
//
//   - GridGraph wraps a rectangular []string grid; bytes in GridOptions.Walls block movement.
//   - Successor builders turn the grid into search.NeighborFunc values over
//     plain points (Steps, WeightedSteps), poses with a turn penalty
//     (TurnMoves), momentum-limited crucibles (CrucibleMoves), wall-phasing
//     walkers (PhaseMoves) and mirror/splitter beams (BeamMoves).
//   - Queries answer the usual grid questions: fewest steps, cells reachable
//     in exactly N steps, labelled regions with area/perimeter/sides, fewest
//     walls to cross, cells on any optimal route, energized beam tiles, and
//     shortcut enumeration.
//
// Why:
//
//   - Maze and puzzle solving: turn penalties, momentum rules, cheats.
//   - Map analysis: contiguous regions, fence lengths, cheapest breaches.
//
// Complexity (R rows, C columns):
//
//   - Regions:           O(R×C), Memory: O(R×C).
//   - ShortestSteps:     O(R×C×d), d = 4 or 8.
//   - MinWallCrossings:  O(R×C×d×log(R×C)).
//   - OptimalTiles:      O(4×R×C×log(R×C)).
//   - Shortcuts:         O(R×C×radius²), split across GOMAXPROCS goroutines.
//
// Options:
//
//   - GridOptions.Walls: bytes that block movement (default "#").
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - Every query also accepts search.Option values (logger, tracing,
//     context, expansion limit) which are passed to the engine.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a query point lies outside the grid.
//   - ErrBadRun: invalid CrucibleMoves run limits.
//   - ErrBadArgument: negative steps or radius, or a non-positive saving.
//   - ErrNotDigit: DigitWeight met a non-digit cell.
//   - ErrUnreachable: Shortcuts has no honest route to improve on.
//   - Engine errors (search.ErrNeighbors and friends) pass through unchanged.
package gridgraph
