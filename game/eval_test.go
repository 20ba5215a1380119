package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateProgress(t *testing.T) {
	t.Run("scoring an untouched board as even", func(t *testing.T) {
		gs := NewGameState(CreateTopology(), NewStandardRules())
		require.Equal(t, 0.0, EvaluateProgress(gs, Red))
	})

	t.Run("favoring the color that is further ahead", func(t *testing.T) {
		gs := NewGameState(CreateTopology(), NewStandardRules())
		place(gs, Red, 0, TrackPosition(30))
		place(gs, Blue, 0, TrackPosition(20))

		require.Greater(t, EvaluateProgress(gs, Red), 0.0)
		require.Less(t, EvaluateProgress(gs, Blue), 0.0)
	})

	t.Run("staying within bounds", func(t *testing.T) {
		gs := NewGameState(CreateTopology(), NewStandardRules())
		for slot := 0; slot < TokensPerPlayer; slot++ {
			place(gs, Green, slot, ArrivedPosition)
		}
		require.Equal(t, 1.0, EvaluateProgress(gs, Green))
		require.Equal(t, -1.0, EvaluateProgress(gs, Red))
	})
}

func TestEvaluateSafety(t *testing.T) {
	exposed := NewGameState(CreateTopology(), NewStandardRules())
	place(exposed, Red, 0, TrackPosition(10))
	place(exposed, Blue, 0, TrackPosition(15))

	covered := NewGameState(CreateTopology(), NewStandardRules())
	place(covered, Red, 0, TrackPosition(8))
	place(covered, Blue, 0, TrackPosition(15))

	require.Greater(t, EvaluateSafety(covered, Red), EvaluateSafety(exposed, Red),
		"A token on a safe cell should score better than an exposed one further ahead")
}
