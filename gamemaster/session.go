package gamemaster

import (
	"context"
	"fmt"
	"parques/dice"
	"parques/game"
	"parques/meta"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Update is published after every accepted roll or move.
type Update struct {
	Roll    *game.RollResult
	Outcome *game.Outcome
	State   game.Snapshot
}

type Option func(s *Session)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// Session owns one game and serializes access to it. Dice are rolled one at
// a time: a roll requested while another is in flight is rejected.
type Session struct {
	mu       sync.Mutex
	id       uuid.UUID
	state    *game.GameState
	roller   *dice.Roller
	updateCh chan Update
	closed   bool
	logger   zerolog.Logger
}

func NewSession(state *game.GameState, roller *dice.Roller, options ...Option) *Session {
	s := &Session{
		id:       uuid.New(),
		state:    state,
		roller:   roller,
		updateCh: make(chan Update, meta.UPDATE_BUFFER),
		logger:   log.Logger,
	}
	for _, option := range options {
		option(s)
	}
	s.logger = s.logger.With().Str("session", s.id.String()).Logger()
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Updates streams accepted rolls and moves. The channel is closed once the
// game is finished. Updates are dropped while the buffer is full.
func (s *Session) Updates() <-chan Update {
	return s.updateCh
}

func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Snapshot()
}

// State returns a copy of the game for look-ahead.
func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Copy()
}

func (s *Session) LegalMoves() []game.Move {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.LegalMoves()
}

// Roll requests one die and blocks until its value is recorded or ctx is done.
func (s *Session) Roll(ctx context.Context) (game.RollResult, error) {
	if err := s.begin(); err != nil {
		return game.RollResult{}, err
	}
	return s.complete(s.roller.Roll(ctx))
}

// RollAsync requests one die and returns at once; onResult is called from
// another goroutine when the value has been recorded.
func (s *Session) RollAsync(ctx context.Context, onResult func(game.RollResult, error)) error {
	if err := s.begin(); err != nil {
		return err
	}
	s.roller.Request(ctx, func(value int, err error) {
		onResult(s.complete(value, err))
	})
	return nil
}

func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.RequestRoll(); err != nil {
		s.logger.Debug().Err(err).Msg("roll rejected")
		return err
	}
	return nil
}

func (s *Session) complete(value int, rollErr error) (game.RollResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rollErr != nil {
		s.state.CancelRoll()
		return game.RollResult{}, fmt.Errorf("rolling die: %w", rollErr)
	}

	res, err := s.state.ReceiveRoll(value)
	if err != nil {
		s.state.CancelRoll()
		return res, err
	}

	event := func() *zerolog.Event {
		return s.logger.Debug().
			Stringer("color", res.Color).
			Stringer("die", res.Die).
			Int("value", res.Value)
	}
	switch {
	case res.OrderEstablished:
		s.logger.Info().Msgf("play order established: %v", s.state.Order)
	case res.Forfeit:
		event().Msg("turn forfeited")
	case res.Retry:
		event().Int("attempts", s.state.Attempts).Msg("no release, rolling again")
	default:
		event().Msg("die rolled")
	}

	s.publish(Update{Roll: &res, State: s.state.Snapshot()})
	return res, nil
}

// Move resolves a move for the active color.
func (s *Session) Move(id game.TokenID, d game.Die) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.state.ResolveMove(id, d)
	if err != nil {
		s.logger.Debug().Err(err).Stringer("token", id).Stringer("die", d).Msg("move rejected")
		return out, err
	}

	for _, captured := range out.Captured {
		s.logger.Info().Stringer("token", id).Stringer("captured", captured).Msgf("captured on %s", out.To)
	}
	if out.Arrived {
		s.logger.Info().Stringer("token", id).Int("arrived", s.state.Players[id.Color].Arrived).Msg("token arrived")
	}
	if out.Finished {
		s.logger.Info().Stringer("winner", id.Color).Int("moves", s.state.Moves).Msg("game over")
	}

	s.publish(Update{Outcome: &out, State: s.state.Snapshot()})
	if out.Finished {
		s.closed = true
		close(s.updateCh)
	}
	return out, nil
}

func (s *Session) publish(u Update) {
	if s.closed {
		return
	}
	select {
	case s.updateCh <- u:
	default:
		s.logger.Warn().Msg("update buffer full, dropping update")
	}
}
