package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/codebreak/codebreak/internal/game"
	"github.com/codebreak/codebreak/internal/guess"
)

// promptSource reads guesses from the player, one line per attempt,
// re-prompting on invalid input. It implements game.GuessSource.
type promptSource struct {
	in        *bufio.Reader
	out       io.Writer
	validator guess.Validator
}

func newPromptSource(in *bufio.Reader, out io.Writer, validator guess.Validator) *promptSource {
	return &promptSource{
		in:        in,
		out:       out,
		validator: validator,
	}
}

// Next prompts until it gets a valid guess. It returns guess.ErrExit when
// the player types the exit token, or the read error once the input
// stream is no longer usable. Validation failures are printed and
// re-prompted, never returned.
func (p *promptSource) Next(ctx context.Context) (guess.Guess, error) {
	for {
		if err := ctx.Err(); err != nil {
			return guess.Guess{}, err
		}

		fmt.Fprintf(p.out, "guess (%d digits %d-%d, or \"exit\")> ",
			p.validator.CodeLength, p.validator.MinDigit, p.validator.MaxDigit)

		line, readErr := p.in.ReadString('\n')
		if readErr != nil && line == "" {
			fmt.Fprintln(p.out)
			return guess.Guess{}, readErr
		}

		g, err := p.validator.Parse(line)
		switch {
		case errors.Is(err, guess.ErrExit):
			return guess.Guess{}, err
		case err != nil:
			fmt.Fprintf(p.out, "  %v\n", err)
			if readErr != nil {
				return guess.Guess{}, readErr
			}
		default:
			return g, nil
		}
	}
}

var _ game.GuessSource = (*promptSource)(nil)
