package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codebreak/codebreak/internal/api"
	"github.com/codebreak/codebreak/internal/config"
)

var playBaseURL string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive game menu",
	Long: `Start the interactive menu. Each round creates a fresh game on the
server and gives you up to the configured number of attempts to guess
the secret code. Type "exit" at a guess prompt to abandon the round.

Configuration is read from codebreak.yaml in the working directory if
present; CODEBREAK_BASE_URL overrides the server address.

Example:
  codebreak play
  codebreak play --base-url https://codes.example.com`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playBaseURL, "base-url", "", "Override the server base URL")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	setupLogging()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if playBaseURL != "" {
		cfg.BaseURL = playBaseURL
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	// Ctrl-C cancels the in-flight call path; cleanup still runs.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	client := api.NewClient(cfg.BaseURL, api.WithLogger(log.Logger))

	m := newMenu(os.Stdin, cmd.OutOrStdout(), client, *cfg, log.Logger)
	m.interactive = term.IsTerminal(int(os.Stdin.Fd()))

	return m.run(ctx)
}

// setupLogging routes structured logs to stderr so gameplay output on
// stdout stays clean.
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	level := os.Getenv(config.EnvLogLevel)
	if level == "" {
		level = "info"
	}
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
