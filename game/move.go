package game

import "fmt"

// Move applies one die to one token.
type Move struct {
	Token TokenID
	Die   Die
}

func (m Move) String() string {
	return fmt.Sprintf("%s with die %s", m.Token, m.Die)
}

// Outcome describes what a resolved move changed.
type Outcome struct {
	Move      Move
	Steps     int
	From      Position
	To        Position
	Captured  []TokenID
	Arrived   bool
	TurnEnded bool // the active color changed, or the same color rolls again
	ExtraTurn bool // a pair was rolled and the same color rolls again
	Finished  bool
}

// RollResult describes what recording a die value changed.
type RollResult struct {
	Color            Color
	Die              Die
	Value            int
	Complete         bool // both dice of the roll are now known
	Pair             bool
	OrderEstablished bool // the last order-determination roll was recorded
	Retry            bool // no token in play and no release: same color rolls again
	Forfeit          bool // the turn passed without a move
	TurnEnded        bool
}
