package game

const (
	NumColors       = 4
	TokensPerPlayer = 4
	DieFaces        = 6
)

type Phase int

const (
	DeterminingOrderPhase Phase = iota
	PlayingPhase
	FinishedPhase
)

func (p Phase) String() string {
	switch p {
	case DeterminingOrderPhase:
		return "determining-order"
	case PlayingPhase:
		return "playing"
	case FinishedPhase:
		return "finished"
	default:
		return "unknown"
	}
}

type StateHash uint64

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the position is for the given color.
type Evaluate func(gs *GameState, c Color) float64
