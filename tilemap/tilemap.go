package tilemap

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Tile runes accepted by New and Parse.
const (
	// TileOpen marks a walkable tile.
	TileOpen = '.'
	// TileWall marks a blocked tile.
	TileWall = '#'
)

// Movement weights per step.
const (
	cardinalCost = 1.0
	diagonalCost = 1.4
)

// Sentinel errors for tilemap construction and search.
var (
	// ErrNilMap indicates a nil *Map was passed to FindPath.
	ErrNilMap = errors.New("tilemap: map is nil")
	// ErrBadDimensions indicates tiles do not divide evenly into rows.
	ErrBadDimensions = errors.New("tilemap: tile count must divide evenly by width")
	// ErrUnknownTile indicates a rune outside the '.'/'#' alphabet.
	ErrUnknownTile = errors.New("tilemap: unknown tile rune")
	// ErrOutOfBounds indicates start or goal is not a valid tile index.
	ErrOutOfBounds = errors.New("tilemap: endpoint out of range")
	// ErrUnreachable indicates no walkable route exists between the endpoints.
	ErrUnreachable = errors.New("tilemap: goal is unreachable")
)

// Map is an immutable rectangular field of '.'/'#' tiles in row-major order.
type Map struct {
	tiles  []byte
	width  int
	height int
}

// Exit is one reachable neighbor tile together with its movement cost.
type Exit struct {
	To   int     // flat tile index
	Cost float64 // 1.0 cardinal, 1.4 diagonal
}

// New builds a Map from a flat tile string and a width.
// Returns ErrBadDimensions or ErrUnknownTile on invalid input.
func New(tiles string, width int) (*Map, error) {
	if width <= 0 || len(tiles) == 0 || len(tiles)%width != 0 {
		return nil, fmt.Errorf("%w: %d tiles, width %d", ErrBadDimensions, len(tiles), width)
	}
	for i := 0; i < len(tiles); i++ {
		if tiles[i] != TileOpen && tiles[i] != TileWall {
			return nil, fmt.Errorf("%w: %q at index %d", ErrUnknownTile, tiles[i], i)
		}
	}

	return &Map{tiles: []byte(tiles), width: width, height: len(tiles) / width}, nil
}

// Parse builds a Map from newline-separated tile rows. Leading and trailing
// blank lines are ignored.
func Parse(tiles string) (*Map, error) {
	lines := strings.Split(strings.Trim(tiles, "\n"), "\n")
	width := len(lines[0])
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrBadDimensions, y, len(line), width)
		}
	}

	return New(strings.Join(lines, ""), width)
}

// Width returns the number of tiles per row.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Len returns the total number of tiles.
func (m *Map) Len() int { return len(m.tiles) }

// Index maps (x, y) to its row-major flat index.
func (m *Map) Index(x, y int) int { return y*m.width + x }

// Coordinate converts a flat index back to (x, y).
func (m *Map) Coordinate(idx int) (x, y int) { return idx % m.width, idx / m.width }

// Open reports whether the tile at idx is walkable.
func (m *Map) Open(idx int) bool { return m.tiles[idx] == TileOpen }

// Distance returns the Euclidean distance between the centers of tiles a and b.
func (m *Map) Distance(a, b int) float64 {
	ax, ay := m.Coordinate(a)
	bx, by := m.Coordinate(b)
	dx, dy := float64(ax-bx), float64(ay-by)

	return math.Sqrt(dx*dx + dy*dy)
}

// exitDeltas enumerates the eight neighbor offsets with their step costs,
// cardinals first.
var exitDeltas = []struct {
	dx, dy int
	cost   float64
}{
	{-1, 0, cardinalCost}, {1, 0, cardinalCost}, {0, -1, cardinalCost}, {0, 1, cardinalCost},
	{-1, -1, diagonalCost}, {1, -1, diagonalCost}, {-1, 1, diagonalCost}, {1, 1, diagonalCost},
}

// Exits appends to buf the reachable neighbors of idx with their costs.
// Only the destination tile is checked, so diagonal exits may pass between
// two orthogonally adjacent walls — the same contract the astar package
// implements for Conn8.
func (m *Map) Exits(idx int, buf []Exit) []Exit {
	x, y := m.Coordinate(idx)
	for _, d := range exitDeltas {
		nx, ny := x+d.dx, y+d.dy
		if nx < 0 || nx >= m.width || ny < 0 || ny >= m.height {
			continue
		}
		to := m.Index(nx, ny)
		if m.Open(to) {
			buf = append(buf, Exit{To: to, Cost: d.cost})
		}
	}

	return buf
}
