// Package grid provides the cost-grid data model shared by the pathfinding
// packages: a rectangular field of non-negative integer traversal costs,
// addressed by a flattened row-major index.
//
// What:
//
//   - Grid wraps a flattened []int64 of cell costs plus a width; it is
//     immutable once built (the constructor deep-copies its input).
//   - A cell value of 0 means impassable; any positive value is the cost of
//     entering that cell.
//   - Helpers convert between (x, y) coordinates and flat indices, test
//     bounds, and compute Manhattan distance between cells.
//   - Construction utilities build grids from 2D slices and from textual
//     tile maps ('.' open, '#' wall).
//
// Invariants (enforced at construction):
//
//   - width > 0
//   - len(cells) > 0 and len(cells) % width == 0
//   - every cell cost ≥ 0
//
// Errors:
//
//   - ErrEmptyGrid: no cells at all.
//   - ErrZeroWidth: width ≤ 0.
//   - ErrRaggedGrid: cell count not divisible by width, or rows of
//     differing lengths.
//   - ErrNegativeCost: a negative cell cost was supplied.
//   - ErrUnknownTile: a tile map contains a rune other than '.' or '#'.
//   - ErrIndexOutOfRange: a coordinate passed to CostAt falls outside the
//     grid.
package grid
