package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// WeightFunc returns the cost of entering a cell holding b.
type WeightFunc func(b byte) (int, error)

// DigitWeight reads the cost of a cell as a single decimal digit.
func DigitWeight(b byte) (int, error) {
	if b < '0' || b > '9' {
		return 0, fmt.Errorf("%w: %q", ErrNotDigit, b)
	}
	return int(b - '0'), nil
}

// Steps returns unit-cost moves to in-bounds, non-wall neighbors according
// to gg.Conn.
func (gg *GridGraph) Steps() search.NeighborFunc[Point, int] {
	return func(p Point) ([]search.Edge[Point, int], error) {
		out := make([]search.Edge[Point, int], 0, len(gg.offsets))
		for _, d := range gg.offsets {
			n := p.Add(d)
			if gg.Open(n) {
				out = append(out, search.Edge[Point, int]{To: n, Cost: 1})
			}
		}
		return out, nil
	}
}

// WeightedSteps is like Steps but entering a cell costs weight of its byte.
// A weight error aborts the search.
func (gg *GridGraph) WeightedSteps(weight WeightFunc) search.NeighborFunc[Point, int] {
	if weight == nil {
		weight = DigitWeight
	}
	return func(p Point) ([]search.Edge[Point, int], error) {
		out := make([]search.Edge[Point, int], 0, len(gg.offsets))
		for _, d := range gg.offsets {
			n := p.Add(d)
			if !gg.Open(n) {
				continue
			}
			w, err := weight(gg.At(n))
			if err != nil {
				return nil, fmt.Errorf("cell %v: %w", n, err)
			}
			out = append(out, search.Edge[Point, int]{To: n, Cost: w})
		}
		return out, nil
	}
}

// TurnMoves returns successors over Pose states: step forward onto an open
// cell for forward, or rotate 90° in place for turn.
func (gg *GridGraph) TurnMoves(forward, turn int) search.NeighborFunc[Pose, int] {
	return func(p Pose) ([]search.Edge[Pose, int], error) {
		out := make([]search.Edge[Pose, int], 0, 3)
		if next := p.At.Move(p.Facing); gg.Open(next) {
			out = append(out, search.Edge[Pose, int]{To: Pose{At: next, Facing: p.Facing}, Cost: forward})
		}
		out = append(out,
			search.Edge[Pose, int]{To: Pose{At: p.At, Facing: p.Facing.TurnRight()}, Cost: turn},
			search.Edge[Pose, int]{To: Pose{At: p.At, Facing: p.Facing.TurnLeft()}, Cost: turn},
		)
		return out, nil
	}
}

// CrucibleMoves returns successors over Momentum states. A state never
// reverses, moves at most maxRun cells in one heading, and must have moved
// at least minRun cells before it may turn. Entering a cell costs weight of
// its byte; a nil weight means DigitWeight.
//
// Goal predicates usually also require Run >= minRun.
func (gg *GridGraph) CrucibleMoves(minRun, maxRun int, weight WeightFunc) (search.NeighborFunc[Momentum, int], error) {
	if minRun < 0 || maxRun < 1 || minRun > maxRun {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrBadRun, minRun, maxRun)
	}
	if weight == nil {
		weight = DigitWeight
	}

	return func(m Momentum) ([]search.Edge[Momentum, int], error) {
		out := make([]search.Edge[Momentum, int], 0, 3)
		for _, d := range Directions {
			run := 1
			if m.Run > 0 {
				switch d {
				case m.Facing.Reverse():
					continue
				case m.Facing:
					if m.Run >= maxRun {
						continue
					}
					run = m.Run + 1
				default:
					if m.Run < minRun {
						continue
					}
				}
			}
			n := m.At.Move(d)
			if !gg.Open(n) {
				continue
			}
			w, err := weight(gg.At(n))
			if err != nil {
				return nil, fmt.Errorf("cell %v: %w", n, err)
			}
			out = append(out, search.Edge[Momentum, int]{To: Momentum{At: n, Facing: d, Run: run}, Cost: w})
		}
		return out, nil
	}, nil
}

// PhaseMoves returns unit-cost successors over Phase states. Stepping onto a
// wall cell spends one unit of budget and is refused when none is left.
func (gg *GridGraph) PhaseMoves() search.NeighborFunc[Phase, int] {
	return func(p Phase) ([]search.Edge[Phase, int], error) {
		out := make([]search.Edge[Phase, int], 0, len(gg.offsets))
		for _, d := range gg.offsets {
			n := p.At.Add(d)
			if !gg.InBounds(n) {
				continue
			}
			budget := p.Budget
			if gg.IsWall(n) {
				if budget <= 0 {
					continue
				}
				budget--
			}
			out = append(out, search.Edge[Phase, int]{To: Phase{At: n, Budget: budget}, Cost: 1})
		}
		return out, nil
	}
}

// deflect returns the headings a beam travelling in d leaves a cell holding b.
func deflect(b byte, d Direction) []Direction {
	horizontal := d == East || d == West
	switch b {
	case '/':
		if horizontal {
			return []Direction{d.TurnLeft()}
		}
		return []Direction{d.TurnRight()}
	case '\\':
		if horizontal {
			return []Direction{d.TurnRight()}
		}
		return []Direction{d.TurnLeft()}
	case '|':
		if horizontal {
			return []Direction{North, South}
		}
	case '-':
		if !horizontal {
			return []Direction{East, West}
		}
	}
	return []Direction{d}
}

// BeamMoves returns unit-cost successors over Pose states read as "a beam is
// in At travelling Facing". The cell's byte redirects the beam: '/' and '\'
// mirror it, '|' and '-' split it when hit flat-on, anything else lets it
// pass. Walls are ignored; beams leaving the grid vanish.
func (gg *GridGraph) BeamMoves() search.NeighborFunc[Pose, int] {
	return func(p Pose) ([]search.Edge[Pose, int], error) {
		outs := deflect(gg.At(p.At), p.Facing)
		edges := make([]search.Edge[Pose, int], 0, len(outs))
		for _, d := range outs {
			if n := p.At.Move(d); gg.InBounds(n) {
				edges = append(edges, search.Edge[Pose, int]{To: Pose{At: n, Facing: d}, Cost: 1})
			}
		}
		return edges, nil
	}
}
