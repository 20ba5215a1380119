package board

import (
	"parques/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func adjacent(a, b Cell) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return max(dx, -dx) <= 1 && max(dy, -dy) <= 1 && a != b
}

func TestTrack(t *testing.T) {
	topology := game.CreateTopology()
	cells := Track()
	require.Len(t, cells, topology.TrackLength)

	t.Run("placing every index on a distinct cell", func(t *testing.T) {
		seen := map[Cell]int{}
		for i, c := range cells {
			prev, ok := seen[c]
			require.False(t, ok, "Index %d shares %s with index %d", i, c, prev)
			seen[c] = i
			require.True(t, c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size, "Index %d is off the grid", i)
		}
	})

	t.Run("walking between neighboring cells", func(t *testing.T) {
		for i := range cells {
			next := cells[(i+1)%len(cells)]
			require.True(t, adjacent(cells[i], next), "Index %d %s and its successor %s", i, cells[i], next)
		}
	})

	t.Run("starting each color on its arm", func(t *testing.T) {
		require.Equal(t, Cell{1, 6}, cells[topology.Start[game.Red]])
		require.Equal(t, Cell{8, 1}, cells[topology.Start[game.Blue]])
		require.Equal(t, Cell{13, 8}, cells[topology.Start[game.Green]])
		require.Equal(t, Cell{6, 13}, cells[topology.Start[game.Yellow]])
	})
}

func TestHome(t *testing.T) {
	topology := game.CreateTopology()
	require.NoError(t, Check(topology))
	onTrack := map[Cell]bool{}
	for _, c := range Track() {
		onTrack[c] = true
	}

	for _, color := range game.Colors {
		home := Home(color)
		require.Len(t, home, topology.LastHomeSlot())
		require.True(t, adjacent(Track()[topology.Diversion[color]], home[0]), "%s enters home next to its diversion cell", color)
		require.True(t, adjacent(home[len(home)-1], Center), "%s home leads to the center", color)
		for _, c := range home {
			require.False(t, onTrack[c], "%s home cell %s is on the track", color, c)
		}
	}
}

func TestLocate(t *testing.T) {
	red := game.TokenID{Color: game.Red, Slot: 2}

	t.Run("locating each zone", func(t *testing.T) {
		cell, err := Locate(red, game.HoldingPosition)
		require.NoError(t, err)
		require.Equal(t, Cell{1, 4}, cell)

		cell, err = Locate(red, game.TrackPosition(13))
		require.NoError(t, err)
		require.Equal(t, Cell{8, 1}, cell)

		cell, err = Locate(game.TokenID{Color: game.Green}, game.HomePosition(5))
		require.NoError(t, err)
		require.Equal(t, Cell{8, 7}, cell)

		cell, err = Locate(red, game.ArrivedPosition)
		require.NoError(t, err)
		require.Equal(t, Center, cell)
	})

	t.Run("rejecting positions off the board", func(t *testing.T) {
		_, err := Locate(red, game.TrackPosition(52))
		require.Error(t, err)
		_, err = Locate(red, game.HomePosition(6))
		require.Error(t, err)
		_, err = Locate(game.TokenID{Color: game.Red, Slot: 4}, game.HoldingPosition)
		require.ErrorIs(t, err, game.ErrInvalidToken)
	})

	t.Run("keeping yards apart", func(t *testing.T) {
		seen := map[Cell]bool{}
		for _, c := range game.Colors {
			for _, cell := range Yard(c) {
				require.False(t, seen[cell])
				seen[cell] = true
			}
		}
	})
}

func TestLayout(t *testing.T) {
	gs := game.NewGameState(game.CreateTopology(), game.NewStandardRules())
	gs.Players[game.Blue].Tokens[0].Pos = game.TrackPosition(13)

	cells, err := Layout(gs.Snapshot())
	require.NoError(t, err)
	require.Len(t, cells, game.NumColors*game.TokensPerPlayer)
	require.Equal(t, Cell{8, 1}, cells[game.TokenID{Color: game.Blue, Slot: 0}])
}

func TestCheck(t *testing.T) {
	topology := game.CreateTopology()
	topology.HomeLength = 5
	require.ErrorIs(t, Check(topology), ErrUnsupportedTopology)
}
