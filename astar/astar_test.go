package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// mustGrid builds a grid from a flat cost slice or fails the test.
func mustGrid(t *testing.T, cells []int64, width int) *grid.Grid {
	t.Helper()
	g, err := grid.New(cells, width)
	require.NoError(t, err, "test grid must be valid")

	return g
}

func ones(n int) []int64 {
	cells := make([]int64, n)
	for i := range cells {
		cells[i] = 1
	}

	return cells
}

// xyToIdx converts (x, y) to a row-major index for a grid of the given width.
func xyToIdx(x, y, width int) int { return y*width + x }

// TestFindPath_StraightLine: on an open 5x5 grid the corner-to-corner path
// is the pure diagonal, since diagonal steps cover more ground per step.
func TestFindPath_StraightLine(t *testing.T) {
	g := mustGrid(t, ones(25), 5)

	path, err := astar.FindPath(g, 0, 24)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 12, 18, 24}, path)
}

// TestFindPath_AvoidsWalls threads a 7x7 grid with an internal wall pattern.
func TestFindPath_AvoidsWalls(t *testing.T) {
	g := mustGrid(t, []int64{
		1, 1, 1, 1, 1, 1, 1,
		1, 1, 0, 1, 1, 0, 1,
		1, 1, 0, 0, 1, 0, 1,
		1, 1, 0, 1, 1, 0, 1,
		1, 1, 0, 0, 0, 0, 1,
		1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1,
	}, 7)

	path, err := astar.FindPath(g, 0, 48)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 15, 22, 29, 37, 45, 46, 47, 48}, path)
}

// TestFindPath_CutsCorners: a diagonal step is legal whenever the target
// cell is open, even between two orthogonally adjacent walls.
func TestFindPath_CutsCorners(t *testing.T) {
	const width = 4
	g := mustGrid(t, []int64{
		1, 0, 1, 1,
		1, 0, 1, 1,
		1, 0, 1, 1,
		1, 1, 1, 1,
	}, width)

	path, err := astar.FindPath(g, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, []int{
		xyToIdx(0, 1, width),
		xyToIdx(0, 2, width),
		xyToIdx(1, 3, width),
		xyToIdx(2, 3, width),
		xyToIdx(3, 3, width),
	}, path)
}

// TestFindPath_CardinalOnlyDetours: the same grid under Conn4 must walk
// around the corner instead of cutting it.
func TestFindPath_CardinalOnlyDetours(t *testing.T) {
	const width = 4
	g := mustGrid(t, []int64{
		1, 0, 1, 1,
		1, 0, 1, 1,
		1, 0, 1, 1,
		1, 1, 1, 1,
	}, width)

	path, err := astar.FindPath(g, 0, 15, astar.WithCardinalOnly())
	require.NoError(t, err)
	assert.Equal(t, []int{
		xyToIdx(0, 1, width),
		xyToIdx(0, 2, width),
		xyToIdx(0, 3, width),
		xyToIdx(1, 3, width),
		xyToIdx(2, 3, width),
		xyToIdx(3, 3, width),
	}, path)
}

// TestFindPath_PrefersCheapCells: an expensive middle column forces the
// detour through the cheap bottom row.
func TestFindPath_PrefersCheapCells(t *testing.T) {
	g := mustGrid(t, []int64{
		1, 20, 1,
		1, 20, 1,
		1, 1, 1,
	}, 3)

	path, err := astar.FindPath(g, 0, 2, astar.WithCardinalOnly())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 7, 8, 5, 2}, path)
}

// TestFindPath_Unreachable: a goal sealed off by walls exhausts the
// frontier and reports ErrUnreachable.
func TestFindPath_Unreachable(t *testing.T) {
	g := mustGrid(t, []int64{
		1, 1, 0, 1,
		1, 1, 0, 1,
		0, 0, 0, 1,
		1, 1, 1, 1,
	}, 4)

	path, err := astar.FindPath(g, 3, 0)
	assert.ErrorIs(t, err, astar.ErrUnreachable)
	assert.Nil(t, path)
}

// TestFindPath_WallGoal: a goal that is itself a wall can never be entered.
func TestFindPath_WallGoal(t *testing.T) {
	g := mustGrid(t, []int64{
		1, 1,
		1, 0,
	}, 2)

	_, err := astar.FindPath(g, 0, 3)
	assert.ErrorIs(t, err, astar.ErrUnreachable)
}

// TestFindPath_StartEqualsGoal returns an empty path with no error:
// distinguishable from unreachability, which is an error.
func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := mustGrid(t, ones(9), 3)

	path, err := astar.FindPath(g, 4, 4)
	assert.NoError(t, err)
	assert.Empty(t, path)
}

// TestFindPath_Validation covers nil grids and out-of-range endpoints.
func TestFindPath_Validation(t *testing.T) {
	g := mustGrid(t, ones(9), 3)

	_, err := astar.FindPath(nil, 0, 8)
	assert.ErrorIs(t, err, astar.ErrNilGrid)

	_, err = astar.FindPath(g, -1, 8)
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)

	_, err = astar.FindPath(g, 0, 9)
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)
}

// TestFindPath_Pure: identical inputs yield identical outputs — FindPath
// keeps no state between calls.
func TestFindPath_Pure(t *testing.T) {
	g := mustGrid(t, []int64{
		1, 1, 1, 1, 1, 1, 1,
		1, 1, 0, 1, 1, 0, 1,
		1, 1, 0, 0, 1, 0, 1,
		1, 1, 0, 1, 1, 0, 1,
		1, 1, 0, 0, 0, 0, 1,
		1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1,
	}, 7)

	first, err := astar.FindPath(g, 0, 48)
	require.NoError(t, err)
	second, err := astar.FindPath(g, 0, 48)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestFindPath_DeterministicTies: on a fully symmetric grid every frontier
// tie is broken the same way, so the chosen path is stable across runs.
func TestFindPath_DeterministicTies(t *testing.T) {
	g := mustGrid(t, ones(9), 3)

	want, err := astar.FindPath(g, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8}, want)
	for i := 0; i < 10; i++ {
		got, err := astar.FindPath(g, 0, 8)
		require.NoError(t, err)
		assert.Equal(t, want, got, "run %d diverged", i)
	}
}

// TestFindPath_TieBreakExpandsHigherIndex: on an open 3x3 grid under Conn4
// every corner-to-corner route costs the same, so the returned path is
// decided purely by the frontier tie-break. Higher cell index pops first,
// which sends the route down column 0 and along the bottom row.
func TestFindPath_TieBreakExpandsHigherIndex(t *testing.T) {
	g := mustGrid(t, ones(9), 3)

	path, err := astar.FindPath(g, 0, 8, astar.WithCardinalOnly())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 7, 8}, path)
}

// TestFindPath_ChebyshevDiagonal: the admissible Conn8 heuristic still
// finds the unique cheapest diagonal on an open grid.
func TestFindPath_ChebyshevDiagonal(t *testing.T) {
	g := mustGrid(t, ones(25), 5)

	path, err := astar.FindPath(g, 0, 24, astar.WithHeuristic(astar.HChebyshev))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 12, 18, 24}, path)
}

// TestFindPath_FromTiles runs end to end from a textual map.
func TestFindPath_FromTiles(t *testing.T) {
	g, err := grid.ParseTiles(`
.#..
.#..
.#..
....
`)
	require.NoError(t, err)

	path, err := astar.FindPath(g, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8, 13, 14, 15}, path)
}
