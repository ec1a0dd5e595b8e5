package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/card"
	"github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
)

var asCard bool

var jokeCmd = &cobra.Command{
	Use:   "joke",
	Short: "Fetch a random joke",
	Long: `Fetch a random joke from the provider, exactly as /joke would.

Examples:
  dadjokes joke
  dadjokes joke --human
  dadjokes joke --card`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newJokesClient()
		if err != nil {
			return err
		}
		j, err := client.Random(cmd.Context())
		if err != nil {
			return providerError(err)
		}
		return writeJoke(cmd, j)
	},
}

var jokeIDCmd = &cobra.Command{
	Use:   "jokeid <id>",
	Short: "Fetch a joke by its ID",
	Long: `Fetch a specific joke by its provider ID, exactly as /jokeid would.

Exits with code 4 when no joke has that ID.

Examples:
  dadjokes jokeid R7UfaahVfFd
  dadjokes jokeid R7UfaahVfFd --human`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newJokesClient()
		if err != nil {
			return err
		}
		j, err := client.ByID(cmd.Context(), args[0])
		if err != nil {
			return providerError(err)
		}
		return writeJoke(cmd, j)
	},
}

func init() {
	for _, c := range []*cobra.Command{jokeCmd, jokeIDCmd} {
		c.Flags().BoolVar(&asCard, "card", false, "Output the card the bot would post")
		rootCmd.AddCommand(c)
	}
}

func writeJoke(cmd *cobra.Command, j *jokes.Joke) error {
	logger.Debug("fetched joke", zap.String("id", j.ID))
	w := cmd.OutOrStdout()
	if asCard {
		c := card.FormatJoke(*j, "", time.Now())
		if humanOutput {
			printCardHuman(w, c)
			return nil
		}
		return outputJSON(w, c)
	}
	if humanOutput {
		printJokeHuman(w, j)
		return nil
	}
	return outputJSON(w, j)
}
