package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "note-transfer",
	Short: "Build, verify and execute committed note transfers",
	Long: "note-transfer assembles transfer commitments on the host side, executes the\n" +
		"guest-side verify/decode pipeline against local account files, and consumes\n" +
		"the resulting notes. Accounts and notes are stored as json files.",
	// Aborts are logged where they happen; the error only drives the
	// exit code.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(consumeCmd)
	rootCmd.AddCommand(counterCmd)
	rootCmd.AddCommand(demoCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
