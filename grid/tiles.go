package grid

import (
	"fmt"
	"strings"
)

// Tile runes accepted by ParseTiles.
const (
	// TileOpen marks a passable cell with entry cost 1.
	TileOpen = '.'
	// TileWall marks an impassable cell.
	TileWall = '#'
)

// ParseTiles builds a Grid from a textual tile map: newline-separated rows
// of '.' (open, cost 1) and '#' (wall). Leading and trailing blank lines
// are ignored so raw string literals read naturally.
// Returns ErrEmptyGrid, ErrRaggedGrid or ErrUnknownTile on invalid input.
func ParseTiles(tiles string) (*Grid, error) {
	lines := strings.Split(strings.Trim(tiles, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	width := len(lines[0])
	cells := make([]int64, 0, len(lines)*width)
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedGrid, y, len(line), width)
		}
		for x, r := range line {
			switch r {
			case TileOpen:
				cells = append(cells, 1)
			case TileWall:
				cells = append(cells, Impassable)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTile, r, x, y)
			}
		}
	}

	return New(cells, width)
}
