package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/bot"
)

// DescriptionMaxLen bounds option descriptions in human output.
const DescriptionMaxLen = 50

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Print the slash command definitions",
	Long: `Print the slash command definitions the bot registers on startup.

Examples:
  dadjokes commands
  dadjokes commands --human`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmds := bot.Commands()
		w := cmd.OutOrStdout()
		if !humanOutput {
			return outputJSON(w, cmds)
		}
		for _, c := range cmds {
			fmt.Fprintf(w, "/%s  %s\n", c.Name, c.Description)
			for _, o := range c.Options {
				req := ""
				if o.Required {
					req = " (required)"
				}
				fmt.Fprintf(w, "%s%s%s  %s\n", ResultIndent, o.Name, req, truncateString(o.Description, DescriptionMaxLen))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
