// Package main provides the dadjokes CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// Global flags
	humanOutput bool
	verbose     bool
	baseURL     string

	logger = zap.NewNop()
)

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		// Print the error since we have SilenceErrors: true
		reportError(os.Stderr, err, humanOutput)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "dadjokes",
	Short: "Discord bot serving dad jokes from icanhazdadjoke.com",
	Long: `dadjokes is a Discord bot that relays jokes from icanhazdadjoke.com.

Run 'dadjokes serve' to connect the bot. It registers the slash commands
/joke, /jokeid, /search and /help, and answers "!joke", "dad joke" and
"tell me a joke" in any channel it can read.

The joke, jokeid and search commands query the provider directly, which is
handy for checking connectivity without Discord. They output JSON by default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logging.Options{Verbose: verbose, Human: humanOutput})
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Override the joke provider URL")
	rootCmd.Version = Version
}

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// exitErrorf builds an exitError from a format string.
func exitErrorf(code int, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}
