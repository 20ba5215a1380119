package agent

import (
	"math"
	"parques/experiments/metrics"
	"parques/game"
)

type greedyAgent struct {
	evaluate game.Evaluate
}

// NewGreedyAgent plays the move whose resulting state evaluates best for
// the active color, preferring the first listed move on ties.
func NewGreedyAgent(evaluate game.Evaluate) Agent {
	if evaluate == nil {
		evaluate = game.EvaluateProgress
	}
	return &greedyAgent{evaluate: evaluate}
}

func (a *greedyAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	player := state.Active()
	moves := state.LegalMoves()

	best := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		next := state.Copy()
		if _, err := next.ResolveMove(move.Token, move.Die); err != nil {
			continue
		}
		score := a.evaluate(next, player)
		if _, ok := next.Winner(); ok {
			score = math.Inf(1)
		}
		if score > bestScore {
			best, bestScore = move, score
		}
	}
	return best, metrics.SearchMetric{}
}
