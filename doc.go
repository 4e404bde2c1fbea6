// Package gridpath is a small toolkit for lowest-cost pathfinding on
// rectangular grids of traversal costs.
//
// What's inside:
//
//	grid/    — the immutable cost-grid data model plus construction helpers
//	           (flattened row-major cells, textual tile maps, 2D slices)
//	astar/   — informed best-first search (A*) over a grid: 4- or
//	           8-directional movement, deterministic tie-breaking,
//	           an integer Manhattan cost model
//	tilemap/ — an alternate char-tile map with weighted diagonals and a
//	           Euclidean-heuristic A*, used as a reference implementation
//	           in differential tests and benchmarks
//	cmd/     — a tiny CLI that runs a search described by a YAML scenario
//
// Everything is pure Go with no hidden global state: one search invocation
// owns all of its working memory, so concurrent searches over the same grid
// are just independent calls.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
