package engine

import (
	"context"
	"parques/agent"
	"parques/dice"
	"parques/experiments/metrics"
	"parques/game"
	"parques/gamemaster"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// stubbornAgent always asks for a move that is never legal.
type stubbornAgent struct{}

func (stubbornAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	return game.Move{Token: game.TokenID{Color: state.Active(), Slot: 7}, Die: game.DieA}, metrics.SearchMetric{}
}

func newSession(seed uint64) *gamemaster.Session {
	state := game.NewGameState(game.CreateTopology(), game.NewStandardRules())
	roller := dice.NewRoller(dice.NewRandomSource(seed), dice.WithDelay(0))
	return gamemaster.NewSession(state, roller, gamemaster.WithLogger(zerolog.Nop()))
}

func randomAgents(seed uint64) [game.NumColors]agent.Agent {
	var agents [game.NumColors]agent.Agent
	for i := range agents {
		agents[i] = agent.NewRandomAgent(seed + uint64(i))
	}
	return agents
}

func TestLocalEngine(t *testing.T) {
	t.Run("requiring an agent per color", func(t *testing.T) {
		agents := randomAgents(1)
		agents[game.Green] = nil
		require.Panics(t, func() { LocalEngine(newSession(1), agents) })
	})
}

func TestRun(t *testing.T) {
	t.Run("playing random agents to a win", func(t *testing.T) {
		for seed := uint64(1); seed <= 5; seed++ {
			session := newSession(seed)
			e := LocalEngine(session, randomAgents(seed), WithLogger(zerolog.Nop()))

			gm, moves, err := e.Run(context.Background())
			require.NoError(t, err)
			require.True(t, gm.Finished, "Seed %d should finish", seed)
			require.Equal(t, session.ID(), gm.ID)
			require.Equal(t, gm.Moves, len(moves))
			require.GreaterOrEqual(t, gm.Arrivals, game.TokensPerPlayer)
			require.Positive(t, gm.Rolls)
			require.False(t, gm.EndTime.Before(gm.StartTime))

			snap := session.Snapshot()
			require.Equal(t, game.FinishedPhase, snap.Phase)
			require.Equal(t, gm.Winner, *snap.Winner)
			require.Equal(t, snap.Players[0].Color, gm.StartingColor, "The first color in play order starts")
			for i, m := range moves {
				require.Equal(t, i+1, m.Step)
			}
		}
	})

	t.Run("mixing strategies", func(t *testing.T) {
		agents := randomAgents(3)
		agents[game.Red] = agent.NewGreedyAgent(game.EvaluateProgress)
		agents[game.Yellow] = agent.NewGreedyAgent(game.EvaluateSafety)

		gm, _, err := LocalEngine(newSession(3), agents, WithLogger(zerolog.Nop())).Run(context.Background())
		require.NoError(t, err)
		require.True(t, gm.Finished)
	})

	t.Run("falling back when an agent plays illegally", func(t *testing.T) {
		agents := randomAgents(4)
		agents[game.Blue] = stubbornAgent{}

		gm, _, err := LocalEngine(newSession(4), agents, WithLogger(zerolog.Nop())).Run(context.Background())
		require.NoError(t, err)
		require.True(t, gm.Finished)
	})

	t.Run("stopping at the action cap", func(t *testing.T) {
		session := newSession(5)
		gm, _, err := LocalEngine(session, randomAgents(5), WithMaxActions(5), WithLogger(zerolog.Nop())).Run(context.Background())

		require.NoError(t, err)
		require.False(t, gm.Finished)
		require.Equal(t, 5, gm.Rolls+gm.Moves)
		require.Equal(t, game.DeterminingOrderPhase, session.Snapshot().Phase, "Five dice do not settle the order")
	})

	t.Run("stopping when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := LocalEngine(newSession(6), randomAgents(6), WithLogger(zerolog.Nop())).Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
