package gridgraph

import (
	"fmt"
	"strings"
)

// NewGridGraph constructs a GridGraph from non-empty rows of equal length.
// It copies the input, so later changes to rows are not observed.
// Returns ErrEmptyGrid if there are no rows or the rows are empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGridGraph(rows []string, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]byte, h)
	for r := 0; r < h; r++ {
		cells[r] = []byte(rows[r])
	}

	var offsets []Point
	if opts.Conn == Conn8 {
		offsets = []Point{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	} else {
		offsets = []Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	}
	gg := &GridGraph{
		Rows:    h,
		Cols:    w,
		Conn:    opts.Conn,
		cells:   cells,
		offsets: offsets,
	}
	for i := 0; i < len(opts.Walls); i++ {
		gg.walls[opts.Walls[i]] = true
	}

	return gg, nil
}

// Parse builds a GridGraph from newline-separated text. Trailing newlines
// and carriage returns are ignored.
func Parse(text string, opts GridOptions) (*GridGraph, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	return NewGridGraph(strings.Split(text, "\n"), opts)
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < gg.Rows && p.Col >= 0 && p.Col < gg.Cols
}

// At returns the byte at p, or 0 when p is out of bounds.
func (gg *GridGraph) At(p Point) byte {
	if !gg.InBounds(p) {
		return 0
	}
	return gg.cells[p.Row][p.Col]
}

// IsWall reports whether p is in bounds and holds a wall byte.
func (gg *GridGraph) IsWall(p Point) bool {
	return gg.InBounds(p) && gg.walls[gg.cells[p.Row][p.Col]]
}

// Open reports whether p is in bounds and not a wall.
func (gg *GridGraph) Open(p Point) bool {
	return gg.InBounds(p) && !gg.walls[gg.cells[p.Row][p.Col]]
}

// Find returns the first cell holding b in row-major order.
func (gg *GridGraph) Find(b byte) (Point, bool) {
	for r, row := range gg.cells {
		for c, v := range row {
			if v == b {
				return Point{r, c}, true
			}
		}
	}
	return Point{}, false
}

// FindAll returns every cell holding b in row-major order.
func (gg *GridGraph) FindAll(b byte) []Point {
	var out []Point
	for r, row := range gg.cells {
		for c, v := range row {
			if v == b {
				out = append(out, Point{r, c})
			}
		}
	}
	return out
}

// NeighborOffsets returns the neighbor deltas for gg.Conn, starting East and
// going clockwise. The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []Point {
	return gg.offsets
}

// index maps p to a row-major index: Row*Cols + Col.
func (gg *GridGraph) index(p Point) int {
	return p.Row*gg.Cols + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Point {
	return Point{idx / gg.Cols, idx % gg.Cols}
}

// checkPoints returns ErrOutOfBounds for the first point outside the grid.
func (gg *GridGraph) checkPoints(ps ...Point) error {
	for _, p := range ps {
		if !gg.InBounds(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	return nil
}
