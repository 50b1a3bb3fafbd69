package cli

import (
	"fmt"
	"io"

	"github.com/codebreak/codebreak/internal/api"
	"github.com/codebreak/codebreak/internal/game"
)

// consoleReporter renders game-state events as gameplay text. It
// implements game.Reporter.
type consoleReporter struct {
	out         io.Writer
	maxAttempts int
}

func newConsoleReporter(out io.Writer, maxAttempts int) *consoleReporter {
	return &consoleReporter{
		out:         out,
		maxAttempts: maxAttempts,
	}
}

func (r *consoleReporter) RoundStarted(id string) {
	fmt.Fprintf(r.out, "New game started (id %s). Good luck!\n", id)
}

func (r *consoleReporter) GuessResult(attempt int, fb api.Feedback) {
	pegs := fb.Pegs()
	if pegs == "" {
		pegs = "no pegs"
	}
	fmt.Fprintf(r.out, "Attempt %d/%d: %s\n", attempt, r.maxAttempts, pegs)
}

func (r *consoleReporter) GuessError(attempt int, err error) {
	fmt.Fprintf(r.out, "Attempt %d/%d failed: %v\n", attempt, r.maxAttempts, err)
}

func (r *consoleReporter) RoundEnded(res game.Result) {
	switch res.Reason {
	case game.ExitWon:
		fmt.Fprintf(r.out, "You cracked the code in %d attempt(s)!\n", res.Attempts)
	case game.ExitExhausted:
		fmt.Fprintf(r.out, "Out of attempts after %d guesses. You lose.\n", res.Attempts)
	case game.ExitAbandoned:
		fmt.Fprintln(r.out, "The server no longer knows this game. Ending the round.")
	case game.ExitUserQuit:
		fmt.Fprintln(r.out, "Round abandoned.")
	case game.ExitCreateFailed:
		fmt.Fprintf(r.out, "Could not start a game: %v\n", res.Err)
	}
}

var _ game.Reporter = (*consoleReporter)(nil)
