package game

import "fmt"

// Zone tells which part of the board a position refers to. Index is only
// meaningful on the track and in the home stretch.
type Zone int

const (
	Holding Zone = iota
	Track
	HomeStretch
	Arrived
)

func (z Zone) String() string {
	switch z {
	case Holding:
		return "holding"
	case Track:
		return "track"
	case HomeStretch:
		return "home-stretch"
	case Arrived:
		return "arrived"
	default:
		return "unknown"
	}
}

type Position struct {
	Zone  Zone
	Index int
}

var (
	HoldingPosition = Position{Zone: Holding}
	ArrivedPosition = Position{Zone: Arrived}
)

func TrackPosition(i int) Position { return Position{Zone: Track, Index: i} }
func HomePosition(i int) Position  { return Position{Zone: HomeStretch, Index: i} }

// InPlay reports whether a token at p is on the track or in a home stretch.
func (p Position) InPlay() bool {
	return p.Zone == Track || p.Zone == HomeStretch
}

func (p Position) String() string {
	switch p.Zone {
	case Track, HomeStretch:
		return fmt.Sprintf("%s[%d]", p.Zone, p.Index)
	default:
		return p.Zone.String()
	}
}

// TokenID is the stable identity of a token: its owner and its slot in
// the owner's arena of four.
type TokenID struct {
	Color Color
	Slot  int
}

func (id TokenID) String() string {
	return fmt.Sprintf("%s-%d", id.Color, id.Slot)
}

type Token struct {
	ID  TokenID
	Pos Position
}

// Player owns a fixed arena of tokens. Arrived tokens keep their slot.
type Player struct {
	Color   Color
	Name    string
	Tokens  [TokensPerPlayer]Token
	Arrived int
}

func newPlayer(c Color, name string) Player {
	p := Player{Color: c, Name: name}
	for i := range p.Tokens {
		p.Tokens[i] = Token{ID: TokenID{Color: c, Slot: i}, Pos: HoldingPosition}
	}
	return p
}

func (p *Player) Finished() bool {
	return p.Arrived == TokensPerPlayer
}

// HasTokenInPlay reports whether any token is on the track or in the home stretch.
func (p *Player) HasTokenInPlay() bool {
	for _, t := range p.Tokens {
		if t.Pos.InPlay() {
			return true
		}
	}
	return false
}

// Count returns how many tokens are in the given zone.
func (p *Player) Count(z Zone) int {
	n := 0
	for _, t := range p.Tokens {
		if t.Pos.Zone == z {
			n++
		}
	}
	return n
}
