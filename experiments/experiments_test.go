package experiments

import (
	"context"
	"parques/config"
	"parques/experiments/metrics"
	"parques/game"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	m.Run()
}

var (
	random = metrics.AgentConfig{ID: 1, Strategy: "random"}
	greedy = metrics.AgentConfig{ID: 2, Strategy: "greedy", Evaluate: "safety"}
)

func TestRotations(t *testing.T) {
	lineups := rotations(strategyConfigs)
	require.Len(t, lineups, game.NumColors)
	for seat := 0; seat < game.NumColors; seat++ {
		seen := map[int]bool{}
		for _, lineup := range lineups {
			seen[lineup[seat].ID] = true
		}
		require.Len(t, seen, len(strategyConfigs), "Every strategy should sit in seat %d once", seat)
	}
}

func TestNewAgent(t *testing.T) {
	for _, config := range strategyConfigs {
		a, err := NewAgent(config, 1)
		require.NoError(t, err)
		require.NotNil(t, a)
	}

	_, err := NewAgent(metrics.AgentConfig{Strategy: "psychic"}, 1)
	require.Error(t, err)
	_, err = NewAgent(metrics.AgentConfig{Strategy: "greedy", Evaluate: "luck"}, 1)
	require.Error(t, err)
}

func TestRunGame(t *testing.T) {
	t.Run("playing to a win", func(t *testing.T) {
		lineup := [game.NumColors]metrics.AgentConfig{random, greedy, random, greedy}
		gm, moves, err := RunGame(context.Background(), config.Default(), lineup, 11)

		require.NoError(t, err)
		require.True(t, gm.Finished)
		require.Len(t, moves, gm.Moves)
	})

	t.Run("searching with mcts", func(t *testing.T) {
		mcts := metrics.AgentConfig{ID: 3, Strategy: "mcts", Goroutines: 2, Episodes: 20, Cutoff: 10}
		lineup := [game.NumColors]metrics.AgentConfig{mcts, random, random, random}
		gm, moves, err := RunGame(context.Background(), config.Default(), lineup, 12)

		require.NoError(t, err)
		require.True(t, gm.Finished)
		searched := false
		for _, m := range moves {
			if m.Player == game.Red && m.Episodes > 0 {
				searched = true
				require.Equal(t, 20, m.Episodes)
			}
		}
		require.True(t, searched, "Red should have searched at least once")
	})

	t.Run("using the configured rules", func(t *testing.T) {
		cfg := config.Default()
		cfg.Release.Policy = "pip"
		lineup := [game.NumColors]metrics.AgentConfig{random, random, random, random}
		gm, _, err := RunGame(context.Background(), cfg, lineup, 13)

		require.NoError(t, err)
		require.True(t, gm.Finished)
	})

	t.Run("rejecting an invalid config", func(t *testing.T) {
		cfg := config.Default()
		cfg.TieBreak = "coin"
		_, _, err := RunGame(context.Background(), cfg, [game.NumColors]metrics.AgentConfig{}, 1)
		require.Error(t, err)
	})
}

func TestRunExperiment(t *testing.T) {
	s := Settings{Config: config.Default(), Games: 2, Seed: 5, OutDir: t.TempDir()}
	configs := []metrics.AgentConfig{random, greedy}

	dir, err := runExperiment(context.Background(), "smoke", s, configs, rotations([]metrics.AgentConfig{random, greedy, random, greedy}))
	require.NoError(t, err)

	require.Equal(t, filepath.Join(s.OutDir, "smoke"), filepath.Dir(dir))
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(dir, name))
	}
}
