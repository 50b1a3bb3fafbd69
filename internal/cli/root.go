package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "codebreak",
	Short: "Interactive client for a remote code-breaking game",
	Long: `Codebreak plays a Mastermind-style guessing game against a remote
server. The server holds a secret code; you submit guesses and get
black/white peg feedback until you crack the code or run out of
attempts.`,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("codebreak version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
