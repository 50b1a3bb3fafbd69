package game

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/codebreak/codebreak/internal/api"
	"github.com/codebreak/codebreak/internal/guess"
)

// ExitReason indicates why a round stopped.
type ExitReason int

const (
	ExitUnknown      ExitReason = iota
	ExitWon                     // Guess matched the full code
	ExitExhausted               // Attempt budget spent without a win
	ExitAbandoned               // Server no longer knows the session
	ExitUserQuit                // Player typed the exit token
	ExitInputClosed             // Guess input stream ended
	ExitCreateFailed            // Session creation failed
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitWon:
		return "won"
	case ExitExhausted:
		return "exhausted"
	case ExitAbandoned:
		return "abandoned"
	case ExitUserQuit:
		return "user quit"
	case ExitInputClosed:
		return "input closed"
	case ExitCreateFailed:
		return "create failed"
	default:
		return "unknown"
	}
}

// Result contains the outcome of one round.
type Result struct {
	Reason   ExitReason
	Attempts int
	Err      error
}

// GuessSource supplies validated guesses, one per attempt. Implementations
// return guess.ErrExit when the player asks to leave the round and any
// other error when the input stream is no longer usable.
type GuessSource interface {
	Next(ctx context.Context) (guess.Guess, error)
}

// Reporter consumes game-state events as the round progresses. The CLI
// renders them; tests record them.
type Reporter interface {
	RoundStarted(id string)
	GuessResult(attempt int, fb api.Feedback)
	GuessError(attempt int, err error)
	RoundEnded(res Result)
}

// Options holds the dependencies for a Loop. Explicit construction keeps
// the transport client injectable rather than process-global.
type Options struct {
	Service     Service
	Source      GuessSource
	Reporter    Reporter
	MaxAttempts int
	CodeLength  int
	Logger      zerolog.Logger
}

// Loop drives one round: create a session, submit up to MaxAttempts
// guesses, then clean the session up whichever way the round ended.
type Loop struct {
	svc         Service
	src         GuessSource
	rep         Reporter
	maxAttempts int
	codeLength  int
	log         zerolog.Logger
}

// New creates a Loop from the given options.
func New(opts Options) *Loop {
	return &Loop{
		svc:         opts.Service,
		src:         opts.Source,
		rep:         opts.Reporter,
		maxAttempts: opts.MaxAttempts,
		codeLength:  opts.CodeLength,
		log:         opts.Logger,
	}
}

// Run plays one round to completion and returns its result. All calls
// against the session are strictly sequential; the only cancellation
// point besides ctx is the exit token at the guess prompt.
func (l *Loop) Run(ctx context.Context) Result {
	sess, err := NewSession(ctx, l.svc, l.codeLength, l.log)
	if err != nil {
		res := Result{Reason: ExitCreateFailed, Err: err}
		l.rep.RoundEnded(res)
		return res
	}

	l.rep.RoundStarted(sess.ID())

	reason := ExitUnknown

	for sess.Status() == StatusInProgress && sess.Attempts() < l.maxAttempts {
		g, err := l.src.Next(ctx)
		if errors.Is(err, guess.ErrExit) {
			reason = ExitUserQuit
			break
		}
		if err != nil {
			// Input stream gone (EOF, closed pipe): end gracefully.
			reason = ExitInputClosed
			break
		}

		fb, err := sess.Submit(ctx, g)
		if err != nil {
			l.rep.GuessError(sess.Attempts(), err)
			if sess.Status() == StatusAbandoned {
				reason = ExitAbandoned
				break
			}
			// Other submit failures burn the attempt and continue.
			continue
		}

		l.rep.GuessResult(sess.Attempts(), fb)

		if sess.Status() == StatusWon {
			reason = ExitWon
			break
		}
	}

	if reason == ExitUnknown && sess.Status() == StatusInProgress {
		sess.Exhaust()
		reason = ExitExhausted
	}

	res := Result{Reason: reason, Attempts: sess.Attempts()}
	l.rep.RoundEnded(res)

	sess.Close(ctx)

	return res
}
