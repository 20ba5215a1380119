package game

import (
	"errors"
	"fmt"
	"sort"
)

var ErrMustLandExactly = errors.New("must land exactly on the arrival cell")

// Topology is the static layout of the board: a circular track shared by
// every color that forks into one private home stretch per color.
type Topology struct {
	TrackLength int              // Cells on the shared circular track
	HomeLength  int              // Slots in each home stretch; the last one is the arrival cell
	Start       [NumColors]int   // Track index a released token is placed on
	Diversion   [NumColors]int   // Track index where a token turns into its home stretch
	Safe        map[int]struct{} // Track indices where no token can be captured
}

// CreateTopology returns the standard cross-and-circle board.
func CreateTopology() *Topology {
	t := &Topology{
		TrackLength: standardTrackLength,
		HomeLength:  standardHomeLength,
		Start:       standardStart,
		Diversion:   standardDiversion,
		Safe:        make(map[int]struct{}, len(standardSafeCells)),
	}
	for _, i := range standardSafeCells {
		t.Safe[i] = struct{}{}
	}
	return t
}

// WithSafeCells returns a copy of the topology using a different safe set.
func (t *Topology) WithSafeCells(cells []int) *Topology {
	c := *t
	c.Safe = make(map[int]struct{}, len(cells))
	for _, i := range cells {
		c.Safe[i] = struct{}{}
	}
	return &c
}

// Validate checks that every index of the table lies on the track and that
// colors do not share start or diversion cells.
func (t *Topology) Validate() error {
	if t.TrackLength <= 0 {
		return fmt.Errorf("invalid topology: track length %d", t.TrackLength)
	}
	if t.HomeLength <= 0 {
		return fmt.Errorf("invalid topology: home length %d", t.HomeLength)
	}
	starts := make(map[int]bool)
	diversions := make(map[int]bool)
	for _, c := range Colors {
		s, d := t.Start[c], t.Diversion[c]
		if !t.onTrack(s) || !t.onTrack(d) {
			return fmt.Errorf("invalid topology: %s start %d or diversion %d is off the track", c, s, d)
		}
		if starts[s] || diversions[d] {
			return fmt.Errorf("invalid topology: %s shares a start or diversion cell", c)
		}
		if s == d {
			return fmt.Errorf("invalid topology: %s starts on its own diversion cell", c)
		}
		starts[s], diversions[d] = true, true
	}
	for i := range t.Safe {
		if !t.onTrack(i) {
			return fmt.Errorf("invalid topology: safe cell %d is off the track", i)
		}
	}
	return nil
}

func (t *Topology) onTrack(i int) bool {
	return i >= 0 && i < t.TrackLength
}

func (t *Topology) IsSafe(i int) bool {
	_, ok := t.Safe[i]
	return ok
}

// SafeCells returns the safe track indices in ascending order.
func (t *Topology) SafeCells() []int {
	cells := make([]int, 0, len(t.Safe))
	for i := range t.Safe {
		cells = append(cells, i)
	}
	sort.Ints(cells)
	return cells
}

func (t *Topology) LastHomeSlot() int {
	return t.HomeLength - 1
}

// Walk moves a token of color c that stands on the track or in its home
// stretch forward by steps cells. The track is walked one cell at a time so
// that the diversion cell is noticed before wrapping around: reaching it with
// steps left sends the remaining steps into the home stretch, while stopping
// exactly on it leaves the token on the track. A token already resting on its
// diversion cell turns into the home stretch on its next move.
func (t *Topology) Walk(c Color, from Position, steps int) (Position, error) {
	if steps <= 0 {
		return from, fmt.Errorf("cannot walk %d steps", steps)
	}
	switch from.Zone {
	case Track:
		p := from.Index
		if p == t.Diversion[c] {
			return t.enterHome(-1, steps)
		}
		for steps > 0 {
			p = (p + 1) % t.TrackLength
			steps--
			if p == t.Diversion[c] && steps > 0 {
				return t.enterHome(-1, steps)
			}
		}
		return TrackPosition(p), nil
	case HomeStretch:
		return t.enterHome(from.Index, steps)
	default:
		return from, fmt.Errorf("cannot walk a token in %s", from.Zone)
	}
}

// enterHome advances within the home stretch from offset (-1 meaning the
// diversion cell just before slot 0).
func (t *Topology) enterHome(offset, steps int) (Position, error) {
	target := offset + steps
	switch {
	case target > t.LastHomeSlot():
		return Position{}, ErrMustLandExactly
	case target == t.LastHomeSlot():
		return ArrivedPosition, nil
	default:
		return HomePosition(target), nil
	}
}

// Progress returns how many cells a token at p has covered since leaving
// holding. A released token has progress 1; an arrived token has the
// maximum, Distance(c).
func (t *Topology) Progress(c Color, p Position) int {
	toDiversion := (t.Diversion[c] - t.Start[c] + t.TrackLength) % t.TrackLength
	switch p.Zone {
	case Track:
		return (p.Index-t.Start[c]+t.TrackLength)%t.TrackLength + 1
	case HomeStretch:
		return toDiversion + 1 + p.Index + 1
	case Arrived:
		return t.Distance(c)
	default:
		return 0
	}
}

// Distance is the progress of an arrived token.
func (t *Topology) Distance(c Color) int {
	toDiversion := (t.Diversion[c] - t.Start[c] + t.TrackLength) % t.TrackLength
	return toDiversion + 1 + t.HomeLength
}

// GLOBAL DATA. Indices follow the printed board: the track runs 13 cells per
// arm, and each color diverts two cells before its own start.

const (
	standardTrackLength = 52
	standardHomeLength  = 7
)

var standardStart = [NumColors]int{
	Red:    0,
	Blue:   13,
	Green:  26,
	Yellow: 39,
}

var standardDiversion = [NumColors]int{
	Red:    50,
	Blue:   11,
	Green:  24,
	Yellow: 37,
}

var standardSafeCells = []int{0, 8, 13, 21, 26, 34, 39, 47}
