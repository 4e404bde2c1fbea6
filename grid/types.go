// Package grid defines core types and sentinel errors for the cost-grid
// data model of github.com/katalvlaran/gridpath.
package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the input has no cells.
	ErrEmptyGrid = errors.New("grid: input must have at least one cell")
	// ErrZeroWidth indicates a non-positive width.
	ErrZeroWidth = errors.New("grid: width must be positive")
	// ErrRaggedGrid indicates the cell count does not divide evenly into rows.
	ErrRaggedGrid = errors.New("grid: all rows must have the same length")
	// ErrNegativeCost indicates a negative cell cost was supplied.
	ErrNegativeCost = errors.New("grid: cell costs must be non-negative")
	// ErrUnknownTile indicates a tile map rune outside the '.'/'#' alphabet.
	ErrUnknownTile = errors.New("grid: unknown tile rune")
	// ErrIndexOutOfRange indicates a coordinate or flat index outside the grid.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional movement: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional movement: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Impassable is the cell cost that marks a wall.
const Impassable int64 = 0
