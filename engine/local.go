package engine

import (
	"context"
	"fmt"
	"parques/agent"
	"parques/experiments/metrics"
	"parques/game"
	"parques/gamemaster"
	"parques/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithMaxActions caps the rolls and moves played before giving up on a game.
func WithMaxActions(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxActions = n
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine drives a session with one agent per color.
type Engine struct {
	session    *gamemaster.Session
	agents     [game.NumColors]agent.Agent
	maxActions int
	logger     zerolog.Logger
}

func LocalEngine(session *gamemaster.Session, agents [game.NumColors]agent.Agent, options ...Option) *Engine {
	for c, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("no agent for %s", game.Color(c)))
		}
	}

	e := &Engine{
		session:    session,
		agents:     agents,
		maxActions: meta.MAX_ACTIONS,
		logger:     log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	e.logger = e.logger.With().Str("session", session.ID().String()).Logger()
	return e
}

// Run rolls and moves until the game is won, the action cap is reached, or
// ctx is done.
func (e *Engine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        e.session.ID(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	finish := func() {
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		if winner := e.session.Snapshot().Winner; winner != nil {
			gameMetric.Winner = *winner
			gameMetric.Finished = true
		}
	}

	if snap := e.session.Snapshot(); snap.Phase == game.PlayingPhase {
		gameMetric.StartingColor = snap.Active
	}

	for actions := 0; actions < e.maxActions; actions++ {
		if e.session.Snapshot().Phase == game.FinishedPhase {
			break
		}

		moves := e.session.LegalMoves()
		if len(moves) == 0 {
			res, err := e.session.Roll(ctx)
			if err != nil {
				finish()
				return gameMetric, moveMetrics, err
			}
			gameMetric.Rolls++
			if res.OrderEstablished {
				gameMetric.StartingColor = e.session.Snapshot().Active
				e.logger.Info().Stringer("color", gameMetric.StartingColor).Msg("starting")
			}
			if res.Forfeit {
				gameMetric.Forfeits++
			}
			continue
		}

		state := e.session.State()
		player := state.Active()
		move, searchMetric := e.agents[player].FindMove(state)

		out, err := e.session.Move(move.Token, move.Die)
		if err != nil {
			e.logger.Warn().Err(err).Stringer("move", move).Msg("agent returned an illegal move, playing the first legal one")
			move = moves[0]
			if out, err = e.session.Move(move.Token, move.Die); err != nil {
				finish()
				return gameMetric, moveMetrics, err
			}
		}

		gameMetric.Moves++
		gameMetric.Captures += len(out.Captured)
		if out.Arrived {
			gameMetric.Arrivals++
		}
		if out.ExtraTurn {
			gameMetric.ExtraTurns++
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         gameMetric.Moves,
			Player:       player,
			SearchMetric: searchMetric,
		})
	}

	finish()
	if gameMetric.Finished {
		e.logger.Info().Stringer("winner", gameMetric.Winner).Int("moves", gameMetric.Moves).Msg("game won")
	} else {
		e.logger.Warn().Int("actions", e.maxActions).Msg("stopped without a winner")
	}
	return gameMetric, moveMetrics, nil
}
