package grid

import "fmt"

// Grid is an immutable rectangular field of non-negative cell costs stored
// in row-major order. Width is the number of cells per row; height is
// implied by len(cells)/width.
type Grid struct {
	cells []int64
	width int
}

// New constructs a Grid from a flattened row-major cost slice and a width.
// The input is deep-copied so later mutation of cells cannot affect the Grid.
// Returns ErrZeroWidth, ErrEmptyGrid, ErrRaggedGrid or ErrNegativeCost on
// invalid input. Complexity: O(N) time and memory.
func New(cells []int64, width int) (*Grid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroWidth, width)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells)%width != 0 {
		return nil, fmt.Errorf("%w: %d cells do not divide into rows of %d", ErrRaggedGrid, len(cells), width)
	}
	for i, c := range cells {
		if c < 0 {
			return nil, fmt.Errorf("%w: cell %d has cost %d", ErrNegativeCost, i, c)
		}
	}
	// Deep copy to prevent external mutation.
	owned := make([]int64, len(cells))
	copy(owned, cells)

	return &Grid{cells: owned, width: width}, nil
}

// From2D constructs a Grid from a non-empty rectangular 2D slice,
// flattening rows in row-major order.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrRaggedGrid if any row length differs.
func From2D(rows [][]int64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([]int64, 0, len(rows)*w)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), w)
		}
		cells = append(cells, row...)
	}

	return New(cells, w)
}

// Width returns the number of cells per row.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.cells) / g.width }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index maps (x, y) to its row-major flat index: y*Width + x.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major flat index back to (x, y).
func (g *Grid) Coordinate(idx int) (x, y int) { return idx % g.width, idx / g.width }

// InBounds reports whether (x, y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.Height()
}

// ValidIndex reports whether idx addresses a cell of the grid.
func (g *Grid) ValidIndex(idx int) bool { return idx >= 0 && idx < len(g.cells) }

// Cost returns the traversal cost of the cell at flat index idx.
// idx must satisfy ValidIndex; invalid indices panic via the slice bound.
func (g *Grid) Cost(idx int) int64 { return g.cells[idx] }

// At returns the traversal cost of the cell at (x, y).
func (g *Grid) At(x, y int) int64 { return g.cells[g.Index(x, y)] }

// CostAt is the bounds-checked variant of At: it reports
// ErrIndexOutOfRange instead of panicking for coordinates outside the grid.
func (g *Grid) CostAt(x, y int) (int64, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrIndexOutOfRange, x, y, g.width, g.Height())
	}

	return g.cells[g.Index(x, y)], nil
}

// Passable reports whether the cell at idx can be entered (cost > 0).
func (g *Grid) Passable(idx int) bool { return g.cells[idx] > Impassable }

// Manhattan returns the Manhattan distance between the cells at flat
// indices a and b: |ax-bx| + |ay-by|.
func (g *Grid) Manhattan(a, b int) int64 {
	ax, ay := g.Coordinate(a)
	bx, by := g.Coordinate(b)

	return int64(abs(ax-bx) + abs(ay-by))
}

// Chebyshev returns the Chebyshev distance between the cells at flat
// indices a and b: max(|ax-bx|, |ay-by|).
func (g *Grid) Chebyshev(a, b int) int64 {
	ax, ay := g.Coordinate(a)
	bx, by := g.Coordinate(b)
	dx, dy := abs(ax-bx), abs(ay-by)
	if dx > dy {
		return int64(dx)
	}

	return int64(dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
