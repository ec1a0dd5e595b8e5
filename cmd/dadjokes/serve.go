package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/bot"
	"github.com/pratyush0898/DadJokes-discord-bot/internal/config"
	"github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
	"github.com/pratyush0898/DadJokes-discord-bot/internal/logging"
)

// newSession creates the Discord session. Tests replace it to assert that no
// connection is attempted.
var newSession = bot.NewSession

var serveGuild string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect to Discord and serve jokes",
	Long: `Connect to Discord and serve jokes until interrupted.

The bot token is read from DISCORD_TOKEN (environment or a .env file in the
working directory) or from discord_token in the global config file.

Examples:
  dadjokes serve
  dadjokes serve --guild 123456789012345678 --verbose`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveGuild, "guild", "", "Register slash commands in this guild only")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveGuild != "" {
		cfg.GuildID = serveGuild
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("cannot start bot", zap.Error(err))
		fmt.Fprintln(cmd.ErrOrStderr(), config.HelpfulTokenMessage())
		return &exitError{code: ExitMissingToken, err: err}
	}
	if cfg.Debug && !verbose {
		l, err := logging.New(logging.Options{Verbose: true, Human: humanOutput})
		if err != nil {
			return err
		}
		logger = l
	}

	session, err := newSession(cfg.DiscordToken)
	if err != nil {
		return err
	}
	b := bot.New(session, jokes.NewClient(cfg.JokesOptions()...),
		bot.WithGuild(cfg.GuildID),
		bot.WithBotLogger(logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, b)
}

// serve runs the bot until ctx is cancelled or the bot fails.
func serve(ctx context.Context, b *bot.Bot) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down", zap.NamedError("cause", context.Cause(ctx)))
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
