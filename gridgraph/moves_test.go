package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func pt(r, c int) gridgraph.Point { return gridgraph.Point{Row: r, Col: c} }

func targets[S comparable](edges []search.Edge[S, int]) []S {
	out := make([]S, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}

func TestSteps(t *testing.T) {
	gg := mustParse(t, "...\n.#.\n...")
	edges, err := gg.Steps()(pt(0, 1))
	require.NoError(t, err)
	// east, west; south is a wall, north is out of bounds
	assert.Equal(t, []gridgraph.Point{pt(0, 2), pt(0, 0)}, targets(edges))
	for _, e := range edges {
		assert.Equal(t, 1, e.Cost)
	}

	gg8, err := gridgraph.Parse("...\n.#.\n...", gridgraph.GridOptions{Walls: "#", Conn: gridgraph.Conn8})
	require.NoError(t, err)
	edges, err = gg8.Steps()(pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Point{pt(0, 1), pt(1, 0)}, targets(edges), "diagonal (1,1) is a wall")
}

func TestWeightedSteps(t *testing.T) {
	gg := mustParse(t, "19\n23")
	edges, err := gg.WeightedSteps(gridgraph.DigitWeight)(pt(0, 0))
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, search.Edge[gridgraph.Point, int]{To: pt(0, 1), Cost: 9}, edges[0])
	assert.Equal(t, search.Edge[gridgraph.Point, int]{To: pt(1, 0), Cost: 2}, edges[1])

	d, ok, err := search.ShortestDistance([]gridgraph.Point{pt(0, 0)}, gg.WeightedSteps(nil),
		func(p gridgraph.Point) bool { return p == pt(1, 1) })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, d)
}

func TestWeightedSteps_BadCell(t *testing.T) {
	gg := mustParse(t, "1x")
	_, _, err := search.ShortestDistance([]gridgraph.Point{pt(0, 0)}, gg.WeightedSteps(gridgraph.DigitWeight),
		func(p gridgraph.Point) bool { return p == pt(0, 1) })
	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrNeighbors)
	assert.ErrorIs(t, err, gridgraph.ErrNotDigit)
}

func TestTurnMoves(t *testing.T) {
	gg := mustParse(t, "..")
	moves := gg.TurnMoves(1, 1000)

	edges, err := moves(gridgraph.Pose{At: pt(0, 0), Facing: gridgraph.East})
	require.NoError(t, err)
	assert.Equal(t, []search.Edge[gridgraph.Pose, int]{
		{To: gridgraph.Pose{At: pt(0, 1), Facing: gridgraph.East}, Cost: 1},
		{To: gridgraph.Pose{At: pt(0, 0), Facing: gridgraph.South}, Cost: 1000},
		{To: gridgraph.Pose{At: pt(0, 0), Facing: gridgraph.North}, Cost: 1000},
	}, edges)

	edges, err = moves(gridgraph.Pose{At: pt(0, 1), Facing: gridgraph.East})
	require.NoError(t, err)
	assert.Len(t, edges, 2, "blocked ahead: only rotations")
}

func TestCrucibleMoves_BadRun(t *testing.T) {
	gg := mustParse(t, "1")
	for _, tc := range []struct{ min, max int }{{-1, 3}, {0, 0}, {4, 3}} {
		_, err := gg.CrucibleMoves(tc.min, tc.max, nil)
		assert.ErrorIs(t, err, gridgraph.ErrBadRun, "min=%d max=%d", tc.min, tc.max)
	}
}

func TestCrucibleMoves(t *testing.T) {
	gg := mustParse(t, "111\n111\n111")

	moves, err := gg.CrucibleMoves(1, 3, nil)
	require.NoError(t, err)

	// stationary: any direction
	edges, err := moves(gridgraph.Momentum{At: pt(1, 1)})
	require.NoError(t, err)
	assert.Len(t, edges, 4)
	for _, e := range edges {
		assert.Equal(t, 1, e.To.Run)
	}

	// run exhausted: no straight, no reverse
	edges, err = moves(gridgraph.Momentum{At: pt(1, 1), Facing: gridgraph.East, Run: 3})
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Momentum{
		{At: pt(2, 1), Facing: gridgraph.South, Run: 1},
		{At: pt(0, 1), Facing: gridgraph.North, Run: 1},
	}, targets(edges))

	// minimum run not met: straight only
	ultra, err := gg.CrucibleMoves(4, 10, nil)
	require.NoError(t, err)
	edges, err = ultra(gridgraph.Momentum{At: pt(1, 1), Facing: gridgraph.East, Run: 2})
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Momentum{{At: pt(1, 2), Facing: gridgraph.East, Run: 3}}, targets(edges))
}

func TestPhaseMoves(t *testing.T) {
	gg := mustParse(t, "#####\n#S#E#\n#.#.#\n#...#\n#####")
	start, end := mustFind(t, gg, 'S'), mustFind(t, gg, 'E')
	atEnd := func(p gridgraph.Phase) bool { return p.At == end }

	d, ok, err := search.ShortestDistance([]gridgraph.Phase{{At: start, Budget: 1}}, gg.PhaseMoves(), atEnd)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, d)

	d, ok, err = search.ShortestDistance([]gridgraph.Phase{{At: start, Budget: 0}}, gg.PhaseMoves(), atEnd,
		search.WithMode(search.ModeBFS))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 6, d)
}
