package game

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebreak/codebreak/internal/api"
	"github.com/codebreak/codebreak/internal/guess"
)

// scriptedSource returns guesses from a fixed list, then errs.
type scriptedSource struct {
	guesses []guess.Guess
	next    int
	errAt   error
}

func (s *scriptedSource) Next(ctx context.Context) (guess.Guess, error) {
	if s.next >= len(s.guesses) {
		if s.errAt != nil {
			return guess.Guess{}, s.errAt
		}
		return guess.Guess{}, io.EOF
	}
	g := s.guesses[s.next]
	s.next++
	return g, nil
}

func repeatedGuesses(t *testing.T, raw string, n int) []guess.Guess {
	t.Helper()
	out := make([]guess.Guess, n)
	for i := range out {
		out[i] = mustGuess(t, raw)
	}
	return out
}

// recordingReporter captures every game-state event.
type recordingReporter struct {
	startedID string
	results   []api.Feedback
	errs      []error
	ended     []Result
}

func (r *recordingReporter) RoundStarted(id string)                  { r.startedID = id }
func (r *recordingReporter) GuessResult(attempt int, fb api.Feedback) { r.results = append(r.results, fb) }
func (r *recordingReporter) GuessError(attempt int, err error)       { r.errs = append(r.errs, err) }
func (r *recordingReporter) RoundEnded(res Result)                   { r.ended = append(r.ended, res) }

func newTestLoop(svc Service, src GuessSource, rep Reporter) *Loop {
	return New(Options{
		Service:     svc,
		Source:      src,
		Reporter:    rep,
		MaxAttempts: 10,
		CodeLength:  testCodeLength,
		Logger:      zerolog.Nop(),
	})
}

func TestRun_WinStopsLoop(t *testing.T) {
	t.Parallel()

	svc := NewMockService()
	svc.SetSubmitFunc(func(ctx context.Context, gameID, g string) (api.Feedback, error) {
		return api.Feedback{Black: 4}, nil
	})

	src := &scriptedSource{guesses: repeatedGuesses(t, "1234", 10)}
	rep := &recordingReporter{}

	res := newTestLoop(svc, src, rep).Run(context.Background())

	assert.Equal(t, ExitWon, res.Reason)
	assert.Equal(t, 1, res.Attempts)
	assert.Len(t, svc.SubmitCalls(), 1)
	require.Len(t, rep.results, 1)
	assert.Equal(t, "BBBB", rep.results[0].Pegs())
	assert.Len(t, svc.DeleteCalls(), 1, "cleanup runs after a win")
}

func TestRun_ExhaustsAttemptBudget(t *testing.T) {
	t.Parallel()

	svc := NewMockService()
	svc.SetSubmitFunc(func(ctx context.Context, gameID, g string) (api.Feedback, error) {
		return api.Feedback{Black: 1, White: 2}, nil
	})

	src := &scriptedSource{guesses: repeatedGuesses(t, "1234", 20)}
	rep := &recordingReporter{}

	res := newTestLoop(svc, src, rep).Run(context.Background())

	assert.Equal(t, ExitExhausted, res.Reason)
	assert.Equal(t, 10, res.Attempts)
	assert.Len(t, svc.SubmitCalls(), 10)
	assert.Len(t, rep.results, 10)
	assert.Len(t, svc.DeleteCalls(), 1, "cleanup runs after a loss")
}

func TestRun_NotFoundEndsRound(t *testing.T) {
	t.Parallel()

	svc := NewMockService()
	svc.SetSubmitFunc(func(ctx context.Context, gameID, g string) (api.Feedback, error) {
		return api.Feedback{}, notFoundErr()
	})

	src := &scriptedSource{guesses: repeatedGuesses(t, "1234", 10)}
	rep := &recordingReporter{}

	res := newTestLoop(svc, src, rep).Run(context.Background())

	assert.Equal(t, ExitAbandoned, res.Reason)
	assert.Len(t, svc.SubmitCalls(), 1, "no further submits after 404")
	require.Len(t, rep.errs, 1)
	assert.True(t, api.IsNotFound(rep.errs[0]))
	assert.Len(t, svc.DeleteCalls(), 1, "delete is still attempted")
}

func TestRun_OtherSubmitErrorsContinue(t *testing.T) {
	t.Parallel()

	svc := NewMockService()
	calls := 0
	svc.SetSubmitFunc(func(ctx context.Context, gameID, g string) (api.Feedback, error) {
		calls++
		if calls == 1 {
			return api.Feedback{}, &api.Error{Kind: api.KindTransport}
		}
		return api.Feedback{Black: 4}, nil
	})

	src := &scriptedSource{guesses: repeatedGuesses(t, "1234", 10)}
	rep := &recordingReporter{}

	res := newTestLoop(svc, src, rep).Run(context.Background())

	assert.Equal(t, ExitWon, res.Reason)
	assert.Equal(t, 2, res.Attempts, "the failed attempt is still consumed")
	assert.Len(t, rep.errs, 1)
	assert.Len(t, rep.results, 1)
}

func TestRun_UserExit(t *testing.T) {
	t.Parallel()

	svc := NewMockService()
	src := &scriptedSource{errAt: guess.ErrExit}
	rep := &recordingReporter{}

	res := newTestLoop(svc, src, rep).Run(context.Background())

	assert.Equal(t, ExitUserQuit, res.Reason)
	assert.Equal(t, 0, res.Attempts)
	assert.Empty(t, svc.SubmitCalls())
	assert.Len(t, svc.DeleteCalls(), 1, "cleanup runs on early exit")
}

func TestRun_InputClosed(t *testing.T) {
	t.Parallel()

	svc := NewMockService()
	src := &scriptedSource{} // Returns io.EOF immediately.
	rep := &recordingReporter{}

	res := newTestLoop(svc, src, rep).Run(context.Background())

	assert.Equal(t, ExitInputClosed, res.Reason)
	assert.Len(t, svc.DeleteCalls(), 1)
}

func TestRun_CreateFailure(t *testing.T) {
	t.Parallel()

	svc := NewMockService()
	svc.SetCreateFunc(func(ctx context.Context) (string, error) {
		return "", &api.Error{Kind: api.KindTransport}
	})

	src := &scriptedSource{guesses: repeatedGuesses(t, "1234", 1)}
	rep := &recordingReporter{}

	res := newTestLoop(svc, src, rep).Run(context.Background())

	assert.Equal(t, ExitCreateFailed, res.Reason)
	assert.Error(t, res.Err)
	assert.Empty(t, svc.SubmitCalls())
	assert.Empty(t, svc.DeleteCalls(), "no session was created, nothing to clean up")
	require.Len(t, rep.ended, 1)
	assert.Equal(t, ExitCreateFailed, rep.ended[0].Reason)
}

func TestRun_DeleteFailureDoesNotAffectResult(t *testing.T) {
	t.Parallel()

	svc := NewMockService()
	svc.SetSubmitFunc(func(ctx context.Context, gameID, g string) (api.Feedback, error) {
		return api.Feedback{Black: 4}, nil
	})
	svc.SetDeleteFunc(func(ctx context.Context, gameID string) error {
		return &api.Error{Kind: api.KindTransport}
	})

	src := &scriptedSource{guesses: repeatedGuesses(t, "1234", 1)}
	rep := &recordingReporter{}

	res := newTestLoop(svc, src, rep).Run(context.Background())

	assert.Equal(t, ExitWon, res.Reason)
	assert.NoError(t, res.Err)
	assert.Len(t, svc.DeleteCalls(), 1)
}

func TestRun_ReportsRoundStartAndEnd(t *testing.T) {
	t.Parallel()

	svc := NewMockService()
	svc.SetCreateFunc(func(ctx context.Context) (string, error) {
		return "abc123", nil
	})
	svc.SetSubmitFunc(func(ctx context.Context, gameID, g string) (api.Feedback, error) {
		return api.Feedback{Black: 4}, nil
	})

	src := &scriptedSource{guesses: repeatedGuesses(t, "1234", 1)}
	rep := &recordingReporter{}

	newTestLoop(svc, src, rep).Run(context.Background())

	assert.Equal(t, "abc123", rep.startedID)
	require.Len(t, rep.ended, 1)
	assert.Equal(t, ExitWon, rep.ended[0].Reason)
	assert.Equal(t, 1, rep.ended[0].Attempts)
}

func TestExitReason_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "won", ExitWon.String())
	assert.Equal(t, "exhausted", ExitExhausted.String())
	assert.Equal(t, "abandoned", ExitAbandoned.String())
	assert.Equal(t, "user quit", ExitUserQuit.String())
	assert.Equal(t, "input closed", ExitInputClosed.String())
	assert.Equal(t, "create failed", ExitCreateFailed.String())
	assert.Equal(t, "unknown", ExitUnknown.String())
}
