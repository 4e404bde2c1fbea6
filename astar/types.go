// Package astar defines tunable options and sentinel errors for A* search
// over a cost grid.
package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates that start or goal is not a valid cell index.
	ErrOutOfBounds = errors.New("astar: endpoint out of range")

	// ErrUnreachable indicates the search exhausted its frontier without
	// ever discovering the goal cell.
	ErrUnreachable = errors.New("astar: goal is unreachable")
)

// Heuristic selects the remaining-distance estimate used to order the
// frontier.
type Heuristic int

const (
	// HManhattan estimates |dx| + |dy|. Admissible under Conn4; under Conn8
	// it may overestimate, trading strict optimality for a tighter search.
	HManhattan Heuristic = iota

	// HChebyshev estimates max(|dx|, |dy|). Admissible under Conn8.
	HChebyshev
)

// Options configures a single FindPath invocation.
//
// Conn      – grid.Conn8 (default) or grid.Conn4.
// Heuristic – HManhattan (default) or HChebyshev.
type Options struct {
	Conn      grid.Connectivity
	Heuristic Heuristic
}

// Option is a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns the Options used when no overrides are supplied:
// 8-directional movement with the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		Conn:      grid.Conn8,
		Heuristic: HManhattan,
	}
}

// WithConnectivity selects 4- or 8-directional movement.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithCardinalOnly restricts movement to the four cardinal directions.
// Shorthand for WithConnectivity(grid.Conn4).
func WithCardinalOnly() Option {
	return func(o *Options) {
		o.Conn = grid.Conn4
	}
}

// WithHeuristic selects the frontier-ordering heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}
