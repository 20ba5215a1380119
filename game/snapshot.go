package game

// Snapshot is a read-only copy of the state for presentation. Mutating it
// has no effect on the game.
type Snapshot struct {
	Phase       Phase
	Players     []Player // In play order, or seating order while the order is determined
	Active      Color
	Dice        Roll
	RollPending bool
	Attempts    int
	Moves       int
	Winner      *Color // Set only in FinishedPhase
	Hash        StateHash
}

func (gs *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Phase:       gs.Phase,
		Active:      gs.Active(),
		Dice:        gs.Dice,
		RollPending: gs.RollPending,
		Attempts:    gs.Attempts,
		Moves:       gs.Moves,
		Hash:        gs.Hash(),
	}

	order := gs.Order
	if len(order) == 0 {
		order = Colors[:]
	}
	s.Players = make([]Player, 0, len(order))
	for _, c := range order {
		s.Players = append(s.Players, gs.Players[c])
	}

	if winner, ok := gs.Winner(); ok {
		s.Winner = &winner
	}
	return s
}
