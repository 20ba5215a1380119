package agent

import (
	"parques/experiments/metrics"
	"parques/game"
)

// Agent picks a move for the active color. It is only asked when the state
// has at least one legal move, and may modify the state it is given.
type Agent interface {
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric)
}
