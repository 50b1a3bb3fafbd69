package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/codebreak/codebreak/internal/config"
	"github.com/codebreak/codebreak/internal/game"
	"github.com/codebreak/codebreak/internal/guess"
)

const banner = `
  ____          _      _                    _
 / ___|___   __| | ___| |__  _ __ ___  __ _| | __
| |   / _ \ / _` + "`" + ` |/ _ \ '_ \| '__/ _ \/ _` + "`" + ` | |/ /
| |__| (_) | (_| |  __/ |_) | | |  __/ (_| |   <
 \____\___/ \__,_|\___|_.__/|_|  \___|\__,_|_|\_\
`

// menu is the interactive top level: play rounds until the player exits.
// It only does I/O; the round itself is driven by game.Loop.
type menu struct {
	in          *bufio.Reader
	out         io.Writer
	svc         game.Service
	cfg         config.Config
	log         zerolog.Logger
	interactive bool
}

func newMenu(in io.Reader, out io.Writer, svc game.Service, cfg config.Config, log zerolog.Logger) *menu {
	return &menu{
		in:  bufio.NewReader(in),
		out: out,
		svc: svc,
		cfg: cfg,
		log: log,
	}
}

// run shows the menu until the player picks exit or the input stream
// ends. Either way it returns nil: leaving the menu is normal
// termination.
func (m *menu) run(ctx context.Context) error {
	if m.interactive {
		fmt.Fprint(m.out, banner, "\n")
		fmt.Fprintf(m.out, "Guess the %d-digit code (digits %d-%d) in at most %d attempts.\n",
			m.cfg.CodeLength, m.cfg.MinDigit, m.cfg.MaxDigit, m.cfg.MaxAttempts)
	}

	for {
		fmt.Fprint(m.out, "\n1) Play\n2) Exit\n> ")

		line, err := m.in.ReadString('\n')
		choice := strings.ToLower(strings.TrimSpace(line))
		if err != nil && choice == "" {
			// Input stream gone; leave quietly.
			fmt.Fprintln(m.out)
			return nil
		}

		switch choice {
		case "1", "play", "p":
			m.playRound(ctx)
		case "2", "exit", "quit", "q":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintf(m.out, "Unknown choice %q\n", choice)
		}

		if err != nil {
			return nil
		}
	}
}

// playRound runs one round against the server.
func (m *menu) playRound(ctx context.Context) {
	validator := guess.Validator{
		CodeLength: m.cfg.CodeLength,
		MinDigit:   m.cfg.MinDigit,
		MaxDigit:   m.cfg.MaxDigit,
	}

	loop := game.New(game.Options{
		Service:     m.svc,
		Source:      newPromptSource(m.in, m.out, validator),
		Reporter:    newConsoleReporter(m.out, m.cfg.MaxAttempts),
		MaxAttempts: m.cfg.MaxAttempts,
		CodeLength:  m.cfg.CodeLength,
		Logger:      m.log,
	})

	res := loop.Run(ctx)
	m.log.Debug().
		Stringer("reason", res.Reason).
		Int("attempts", res.Attempts).
		Msg("round finished")
}
