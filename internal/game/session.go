package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/codebreak/codebreak/internal/api"
	"github.com/codebreak/codebreak/internal/guess"
)

// Service is the slice of the transport client a session needs.
type Service interface {
	CreateGame(ctx context.Context) (string, error)
	SubmitGuess(ctx context.Context, gameID, guess string) (api.Feedback, error)
	DeleteGame(ctx context.Context, gameID string) error
}

// Status is the lifecycle state of a session.
type Status int

const (
	// StatusInProgress means the session accepts further guesses.
	StatusInProgress Status = iota
	// StatusWon means a guess scored a full set of black pegs.
	StatusWon
	// StatusExhausted means the attempt budget ran out without a win.
	StatusExhausted
	// StatusAbandoned means the server no longer knows the game; no
	// further guesses may be submitted.
	StatusAbandoned
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusExhausted:
		return "exhausted"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// ErrSessionOver is returned by Submit once a session has reached a
// terminal status. A correctly driven loop never sees it.
var ErrSessionOver = errors.New("session is no longer in progress")

// Session owns one server-side game for its lifetime: it is created in
// progress, accepts sequential guess submissions, and is deleted
// (best-effort) by Close. Exactly one session is active at a time and it
// has a single owner, so no locking is needed.
type Session struct {
	svc        Service
	log        zerolog.Logger
	id         string
	codeLength int
	attempts   int
	status     Status
}

// NewSession creates a game on the server and returns a session wrapping
// it. Any transport or server failure aborts creation; there is nothing
// to clean up in that case.
func NewSession(ctx context.Context, svc Service, codeLength int, log zerolog.Logger) (*Session, error) {
	id, err := svc.CreateGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Debug().Str("game_id", id).Msg("session created")

	return &Session{
		svc:        svc,
		log:        log,
		id:         id,
		codeLength: codeLength,
		status:     StatusInProgress,
	}, nil
}

// ID returns the server-issued game identifier.
func (s *Session) ID() string {
	return s.id
}

// Attempts returns how many submissions this session has made.
func (s *Session) Attempts() int {
	return s.attempts
}

// Status returns the session's current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Submit sends one guess to the server. The attempt counter increments
// once per call whether or not the call succeeds, which bounds retries
// against a session that keeps failing. A server-reported 404 moves the
// session to StatusAbandoned: the game is gone server-side and no further
// submissions are allowed.
func (s *Session) Submit(ctx context.Context, g guess.Guess) (api.Feedback, error) {
	if s.status != StatusInProgress {
		return api.Feedback{}, ErrSessionOver
	}

	s.attempts++

	fb, err := s.svc.SubmitGuess(ctx, s.id, g.String())
	if err != nil {
		if api.IsNotFound(err) {
			s.status = StatusAbandoned
			s.log.Debug().Str("game_id", s.id).Msg("session invalid server-side")
		}
		return api.Feedback{}, err
	}

	if fb.Black == s.codeLength {
		s.status = StatusWon
	}

	return fb, nil
}

// Exhaust marks the session as out of attempts. It only applies to a
// session still in progress.
func (s *Session) Exhaust() {
	if s.status == StatusInProgress {
		s.status = StatusExhausted
	}
}

// Close deletes the game server-side. Deletion is best-effort cleanup:
// the server may have already expired the session, so failures are
// reported as a warning and never propagated.
func (s *Session) Close(ctx context.Context) {
	if err := s.svc.DeleteGame(ctx, s.id); err != nil {
		s.log.Warn().Err(err).Str("game_id", s.id).Msg("failed to delete game")
	}
}
