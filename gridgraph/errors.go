package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBadRun indicates invalid straight-run limits for CrucibleMoves.
	ErrBadRun = errors.New("gridgraph: run limits must satisfy 0 <= min <= max and max >= 1")
	// ErrBadArgument indicates a negative step count, radius or saving.
	ErrBadArgument = errors.New("gridgraph: invalid argument")
	// ErrNotDigit is returned by DigitWeight for a non-digit cell.
	ErrNotDigit = errors.New("gridgraph: cell is not a decimal digit")
	// ErrUnreachable indicates the target cannot be reached at all.
	ErrUnreachable = errors.New("gridgraph: target unreachable")
)
