package agent

import (
	"parques/experiments/metrics"
	"parques/game"
	"parques/searcher"
)

type searchAgent struct {
	mcts *searcher.MCTS
}

// NewSearchAgent plays the move visited most by a Monte Carlo tree search.
func NewSearchAgent(mcts *searcher.MCTS) Agent {
	return &searchAgent{mcts: mcts}
}

func (a *searchAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 1 {
		return moves[0], metrics.SearchMetric{}
	}

	policy, metric := a.mcts.Simulate(state)

	best := moves[0]
	for _, move := range moves[1:] {
		if policy[move] > policy[best] {
			best = move
		}
	}
	return best, metric
}
