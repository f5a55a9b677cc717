package game

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Session plays consecutive rounds on one engine and keeps the running
// score across them.
type Session struct {
	id     string
	engine *Engine
	logger *log.Logger
	score  float64
	rounds int
}

// NewSession wraps engine in a session with a fresh id.
func NewSession(engine *Engine, logger *log.Logger) *Session {
	id := uuid.NewString()
	if logger == nil {
		logger = engine.logger
	}
	return &Session{
		id:     id,
		engine: engine,
		logger: logger.With("session", id[:8]),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Engine returns the underlying round engine.
func (s *Session) Engine() *Engine { return s.engine }

// Events returns the bus that round events are published on.
func (s *Session) Events() EventBus { return s.engine.eventBus }

// Score returns the cumulative score of every round played so far.
func (s *Session) Score() float64 { return s.score }

// Rounds returns how many rounds have been scored.
func (s *Session) Rounds() int { return s.rounds }

// State returns a snapshot of the most recent round.
func (s *Session) State() GameState { return s.engine.State() }

// Render formats the current state for display.
func (s *Session) Render() string { return s.State().String() }

// Train runs unscored learning rounds for a trainable player agent.
func (s *Session) Train(ctx context.Context, rounds int) error {
	return s.engine.Train(ctx, rounds)
}

// Play resets the score and plays rounds back to back, returning the
// cumulative score. With unbounded set it ignores rounds and keeps going
// until ctx is cancelled, in which case the score so far is returned along
// with the context error.
func (s *Session) Play(ctx context.Context, rounds int, unbounded bool) (float64, error) {
	s.score = 0
	s.rounds = 0
	s.engine.score = 0

	s.logger.Debug("Starting session", "rounds", rounds, "unbounded", unbounded)
	for unbounded || s.rounds < rounds {
		if err := ctx.Err(); err != nil {
			s.logger.Debug("Session interrupted", "rounds", s.rounds, "score", s.score)
			return s.score, err
		}
		if err := s.playOne(ctx); err != nil {
			return s.score, err
		}
	}
	s.logger.Debug("Session complete", "rounds", s.rounds, "score", s.score)
	return s.score, nil
}

func (s *Session) playOne(ctx context.Context) error {
	result, err := s.engine.PlayRound(ctx)
	if err != nil {
		return err
	}
	s.rounds++
	s.score += result.Score
	s.engine.score = s.score
	s.engine.eventBus.Publish(NewRoundEndEvent(s.rounds, result, s.engine.State(), s.score))
	return nil
}
