// Package board maps engine positions to cells of the 15x15 cross-shaped
// board, in grid units with the origin at the top-left corner.
package board

import (
	"errors"
	"fmt"
	"parques/game"
)

const Size = 15

var ErrUnsupportedTopology = errors.New("board only draws the standard topology")

type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

type leg struct {
	from   Cell
	dx, dy int
	n      int
}

// The track runs clockwise starting on red's start cell, turning diagonally
// around each inner corner of the cross.
var legs = []leg{
	{Cell{1, 6}, 1, 0, 5},
	{Cell{6, 5}, 0, -1, 6},
	{Cell{7, 0}, 1, 0, 1},
	{Cell{8, 0}, 0, 1, 6},
	{Cell{9, 6}, 1, 0, 6},
	{Cell{14, 7}, 0, 1, 1},
	{Cell{14, 8}, -1, 0, 6},
	{Cell{8, 9}, 0, 1, 6},
	{Cell{7, 14}, -1, 0, 1},
	{Cell{6, 14}, 0, -1, 6},
	{Cell{5, 8}, -1, 0, 6},
	{Cell{0, 7}, 0, -1, 2},
}

// Home stretches run from the arm's outer edge towards the center.
var homeLegs = [game.NumColors]leg{
	game.Red:    {Cell{1, 7}, 1, 0, 6},
	game.Blue:   {Cell{7, 1}, 0, 1, 6},
	game.Green:  {Cell{13, 7}, -1, 0, 6},
	game.Yellow: {Cell{7, 13}, 0, -1, 6},
}

var yardOrigins = [game.NumColors]Cell{
	game.Red:    {0, 0},
	game.Blue:   {9, 0},
	game.Green:  {9, 9},
	game.Yellow: {0, 9},
}

// Center is where arrived tokens are drawn.
var Center = Cell{7, 7}

var (
	track = walk(legs...)
	homes [game.NumColors][]Cell
)

func init() {
	for c, l := range homeLegs {
		homes[c] = walk(l)
	}
}

func walk(legs ...leg) []Cell {
	var cells []Cell
	for _, l := range legs {
		for i := 0; i < l.n; i++ {
			cells = append(cells, Cell{l.from.X + i*l.dx, l.from.Y + i*l.dy})
		}
	}
	return cells
}

// Track returns the cell of every track index.
func Track() []Cell {
	return append([]Cell(nil), track...)
}

// Home returns the home stretch cells of color c, nearest the track first.
// The arrival slot is drawn at Center.
func Home(c game.Color) []Cell {
	return append([]Cell(nil), homes[c]...)
}

// Yard returns the holding cell of each token slot of color c.
func Yard(c game.Color) [game.TokensPerPlayer]Cell {
	o := yardOrigins[c]
	return [game.TokensPerPlayer]Cell{
		{o.X + 1, o.Y + 1},
		{o.X + 4, o.Y + 1},
		{o.X + 1, o.Y + 4},
		{o.X + 4, o.Y + 4},
	}
}

// Check reports whether t has the shape this board draws.
func Check(t *game.Topology) error {
	if t.TrackLength != len(track) || t.HomeLength != len(homes[game.Red])+1 {
		return fmt.Errorf("%w: track of %d cells, home stretch of %d", ErrUnsupportedTopology, t.TrackLength, t.HomeLength)
	}
	return nil
}

// Locate returns the cell where token id standing at p is drawn.
func Locate(id game.TokenID, p game.Position) (Cell, error) {
	if !id.Color.Valid() || id.Slot < 0 || id.Slot >= game.TokensPerPlayer {
		return Cell{}, fmt.Errorf("%w: %s", game.ErrInvalidToken, id)
	}
	switch p.Zone {
	case game.Holding:
		return Yard(id.Color)[id.Slot], nil
	case game.Track:
		if p.Index < 0 || p.Index >= len(track) {
			return Cell{}, fmt.Errorf("track index %d is off the board", p.Index)
		}
		return track[p.Index], nil
	case game.HomeStretch:
		home := homes[id.Color]
		if p.Index < 0 || p.Index >= len(home) {
			return Cell{}, fmt.Errorf("home stretch index %d is off the board", p.Index)
		}
		return home[p.Index], nil
	case game.Arrived:
		return Center, nil
	default:
		return Cell{}, fmt.Errorf("unknown zone %s", p.Zone)
	}
}

// Layout locates every token of a snapshot.
func Layout(s game.Snapshot) (map[game.TokenID]Cell, error) {
	cells := make(map[game.TokenID]Cell, game.NumColors*game.TokensPerPlayer)
	for _, p := range s.Players {
		for _, tok := range p.Tokens {
			cell, err := Locate(tok.ID, tok.Pos)
			if err != nil {
				return nil, err
			}
			cells[tok.ID] = cell
		}
	}
	return cells, nil
}
