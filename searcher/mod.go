package searcher

import (
	"math"
	"parques/game"

	"golang.org/x/exp/rand"
)

const C_SQUARED = 2.0 // Exploration constant

const WIN = 1.0   // Reward for winning outcome
const LOSS = -WIN // Reward for losing outcome, also applied as virtual loss

// MaxCutoff plays rollouts until the game is over.
const MaxCutoff = math.MaxInt

type Node interface {
	SelectOrExpand(state *game.GameState, rng *rand.Rand) (child Node, childState *game.GameState, selected bool)
	Backup(reward func(game.Color) float64) Node
	Visits() int
	applyLoss()
	score(normalizer float64) float64
}

func rewarder(winner game.Color) func(c game.Color) float64 {
	return func(c game.Color) float64 {
		if c == winner {
			return WIN
		}
		return LOSS
	}
}

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}

// rollDice rolls for whoever is active until a move can be chosen or the
// game is over. Order determination, failed releases and blocked rolls are
// all played out here.
func rollDice(state *game.GameState, rng *rand.Rand) {
	for state.Phase != game.FinishedPhase && len(state.LegalMoves()) == 0 {
		if err := state.RequestRoll(); err != nil {
			panic(err)
		}
		if _, err := state.ReceiveRoll(rng.Intn(game.DieFaces) + 1); err != nil {
			panic(err)
		}
	}
}

func play(state *game.GameState, move game.Move) game.Outcome {
	out, err := state.ResolveMove(move.Token, move.Die)
	if err != nil {
		panic(err)
	}
	return out
}
