package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/bot"
	"github.com/pratyush0898/DadJokes-discord-bot/internal/card"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search jokes by keyword",
	Long: `Search the provider for jokes containing a term, exactly as /search would.

The limit is clamped to 1-10 and 0 means 5, matching the slash command.

Examples:
  dadjokes search cow
  dadjokes search "dog" --limit 3 --human
  dadjokes search cat --card`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")
		limit := bot.SearchLimit(int64(searchLimit))

		client, err := newJokesClient()
		if err != nil {
			return err
		}
		result, err := client.Search(cmd.Context(), term, limit)
		if err != nil {
			return providerError(err)
		}
		logger.Debug("search complete",
			zap.String("term", term),
			zap.Int("limit", limit),
			zap.Int("total", result.TotalJokes))

		w := cmd.OutOrStdout()
		if asCard {
			if result.Empty() {
				return exitErrorf(ExitNotFound, "no jokes found for %q", term)
			}
			c := card.FormatSearchResults(term, *result, limit, time.Now())
			if humanOutput {
				printCardHuman(w, c)
				return nil
			}
			return outputJSON(w, c)
		}
		if humanOutput {
			printSearchHuman(w, term, result)
			return nil
		}
		return outputJSON(w, result)
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", bot.DefaultSearchLimit, "Maximum results (1-10)")
	searchCmd.Flags().BoolVar(&asCard, "card", false, "Output the card the bot would post")
	rootCmd.AddCommand(searchCmd)
}
