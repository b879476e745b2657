package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// mustParse builds a grid with default options or fails the test.
func mustParse(t testing.TB, text string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.Parse(text, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	return gg
}

// mustFind returns the position of b or fails the test.
func mustFind(t testing.TB, gg *gridgraph.GridGraph, b byte) gridgraph.Point {
	t.Helper()
	p, ok := gg.Find(b)
	require.True(t, ok, "byte %q not in grid", b)
	return p
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"EmptyRows", []string{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", []string{""}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", []string{"ab", "c"}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.rows, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGridGraph_CopiesInput(t *testing.T) {
	rows := []string{"ab", "cd"}
	gg, err := gridgraph.NewGridGraph(rows, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	rows[0] = "zz"
	assert.Equal(t, byte('a'), gg.At(gridgraph.Point{Row: 0, Col: 0}))
}

func TestParse(t *testing.T) {
	gg, err := gridgraph.Parse("#.S\r\n..E\r\n\n", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, gg.Rows)
	assert.Equal(t, 3, gg.Cols)
	assert.Equal(t, gridgraph.Point{Row: 0, Col: 2}, mustFind(t, gg, 'S'))
	assert.Equal(t, gridgraph.Point{Row: 1, Col: 2}, mustFind(t, gg, 'E'))

	_, err = gridgraph.Parse("\n\n", gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// TestInBounds checks InBounds, At, IsWall and Open on a 2×3 grid.
func TestInBounds(t *testing.T) {
	gg := mustParse(t, "#.a\n.#.")
	cases := []struct {
		p            gridgraph.Point
		in, wall, op bool
		b            byte
	}{
		{gridgraph.Point{Row: 0, Col: 0}, true, true, false, '#'},
		{gridgraph.Point{Row: 0, Col: 2}, true, false, true, 'a'},
		{gridgraph.Point{Row: 1, Col: 1}, true, true, false, '#'},
		{gridgraph.Point{Row: -1, Col: 0}, false, false, false, 0},
		{gridgraph.Point{Row: 2, Col: 0}, false, false, false, 0},
		{gridgraph.Point{Row: 0, Col: 3}, false, false, false, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.in, gg.InBounds(tc.p), "InBounds%v", tc.p)
		assert.Equal(t, tc.wall, gg.IsWall(tc.p), "IsWall%v", tc.p)
		assert.Equal(t, tc.op, gg.Open(tc.p), "Open%v", tc.p)
		assert.Equal(t, tc.b, gg.At(tc.p), "At%v", tc.p)
	}
}

func TestCustomWalls(t *testing.T) {
	gg, err := gridgraph.Parse("a#b\nX.O", gridgraph.GridOptions{Walls: "XO", Conn: gridgraph.Conn4})
	require.NoError(t, err)
	assert.False(t, gg.IsWall(gridgraph.Point{Row: 0, Col: 1}))
	assert.True(t, gg.IsWall(gridgraph.Point{Row: 1, Col: 0}))
	assert.True(t, gg.IsWall(gridgraph.Point{Row: 1, Col: 2}))
}

func TestFindAll(t *testing.T) {
	gg := mustParse(t, "a.a\n.a.")
	assert.Equal(t, []gridgraph.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1}}, gg.FindAll('a'))
	assert.Empty(t, gg.FindAll('z'))
	_, ok := gg.Find('z')
	assert.False(t, ok)
}

func TestCoordinate(t *testing.T) {
	gg := mustParse(t, "....\n....\n....")
	assert.Equal(t, gridgraph.Point{Row: 0, Col: 0}, gg.Coordinate(0))
	assert.Equal(t, gridgraph.Point{Row: 1, Col: 3}, gg.Coordinate(7))
	assert.Equal(t, gridgraph.Point{Row: 2, Col: 1}, gg.Coordinate(9))
}

func TestNeighborOffsets(t *testing.T) {
	gg := mustParse(t, ".")
	assert.Len(t, gg.NeighborOffsets(), 4)

	gg8, err := gridgraph.Parse(".", gridgraph.GridOptions{Walls: "#", Conn: gridgraph.Conn8})
	require.NoError(t, err)
	offs := gg8.NeighborOffsets()
	assert.Len(t, offs, 8)
	assert.Equal(t, gridgraph.Point{Row: 0, Col: 1}, offs[0])
}

//----------------------------------------------------------------------------//
// Points and directions
//----------------------------------------------------------------------------//

func TestDirection(t *testing.T) {
	for _, d := range gridgraph.Directions {
		assert.Equal(t, d, d.TurnRight().TurnLeft())
		assert.Equal(t, d.Reverse(), d.TurnRight().TurnRight())
		back := d.Delta().Add(d.Reverse().Delta())
		assert.Equal(t, gridgraph.Point{}, back)
	}
	assert.Equal(t, gridgraph.South, gridgraph.East.TurnRight())
	assert.Equal(t, gridgraph.North, gridgraph.East.TurnLeft())
	assert.Equal(t, "W", gridgraph.West.String())
	assert.Equal(t, gridgraph.Point{Row: -1, Col: 0}, gridgraph.North.Delta())
}

func TestPoint(t *testing.T) {
	p := gridgraph.Point{Row: 2, Col: 3}
	assert.Equal(t, gridgraph.Point{Row: 2, Col: 4}, p.Move(gridgraph.East))
	assert.Equal(t, gridgraph.Point{Row: 1, Col: 3}, p.Move(gridgraph.North))
	assert.Equal(t, 7, p.Manhattan(gridgraph.Point{Row: -1, Col: 7}))
	assert.Equal(t, "(2,3)", p.String())
}
