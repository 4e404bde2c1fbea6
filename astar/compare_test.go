package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/tilemap"
)

// The two engines use different cost models (integer Manhattan steps vs
// float 1.0/1.4 steps), so the routes they pick may differ in shape.
// What they must always agree on is reachability.

// TestEnginesAgreeOnReachability runs both engines over the same layouts
// and cross-checks found/unreachable outcomes.
func TestEnginesAgreeOnReachability(t *testing.T) {
	layouts := []struct {
		name      string
		tiles     string
		reachable bool
	}{
		{"Open", "....\n....\n....\n....", true},
		{"WallWithGap", ".#..\n.#..\n.#..\n....", true},
		{"Sealed", "..#.\n..#.\n####\n....", false},
	}
	for _, tc := range layouts {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.ParseTiles(tc.tiles)
			require.NoError(t, err)
			m, err := tilemap.Parse(tc.tiles)
			require.NoError(t, err)
			goal := g.Len() - 1

			gridPath, gridErr := astar.FindPath(g, 0, goal)
			tilePath, _, tileErr := tilemap.FindPath(m, 0, goal)

			if tc.reachable {
				require.NoError(t, gridErr)
				require.NoError(t, tileErr)
				assert.Equal(t, goal, gridPath[len(gridPath)-1], "grid path must end at goal")
				assert.Equal(t, goal, tilePath[len(tilePath)-1], "tile path must end at goal")
			} else {
				assert.ErrorIs(t, gridErr, astar.ErrUnreachable)
				assert.ErrorIs(t, tileErr, tilemap.ErrUnreachable)
			}
		})
	}
}
