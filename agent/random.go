package agent

import (
	"parques/experiments/metrics"
	"parques/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
