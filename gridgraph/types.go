// Package gridgraph defines the grid, point and state types used to run
// searches over character grids.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, S, W, N.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Walls lists the bytes that block movement.
	Walls string
	// Conn chooses 4- or 8-directional connectivity for Steps and MinWallCrossings.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Walls="#" and Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Walls: "#",
		Conn:  Conn4,
	}
}

// GridGraph is an immutable rectangular byte grid. Rows and Cols define its
// dimensions; the cells are only reachable through At.
type GridGraph struct {
	Rows, Cols int
	Conn       Connectivity

	cells   [][]byte
	walls   [256]bool
	offsets []Point
}

// Point is a grid coordinate. Row grows downwards, Col grows rightwards.
type Point struct {
	Row, Col int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{p.Row + d.Row, p.Col + d.Col}
}

// Move returns the neighbor of p in direction d.
func (p Point) Move(d Direction) Point {
	return p.Add(d.Delta())
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is one of the four compass headings, in clockwise order.
type Direction uint8

const (
	East Direction = iota
	South
	West
	North
)

// Directions lists every heading in clockwise order starting at East.
var Directions = [4]Direction{East, South, West, North}

var deltas = [4]Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// TurnRight rotates d by 90° clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) % 4 }

// TurnLeft rotates d by 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) % 4 }

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return (d + 2) % 4 }

// Delta returns the unit step of d.
func (d Direction) Delta() Point { return deltas[d%4] }

func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case North:
		return "N"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Pose is a position plus the heading it faces.
type Pose struct {
	At     Point
	Facing Direction
}

// Momentum is a position, the heading of the last move and how many cells
// have been moved in that heading without turning. Run == 0 means the state
// has not moved yet and may leave in any direction.
type Momentum struct {
	At     Point
	Facing Direction
	Run    int
}

// Phase is a position plus the number of wall cells that may still be entered.
type Phase struct {
	At     Point
	Budget int
}

// Region is a maximal 4-connected set of cells holding the same byte.
type Region struct {
	Label byte
	Cells []Point
}
