package bot

import (
	"github.com/bwmarrin/discordgo"
)

// Commands returns the slash command definitions registered on startup.
func Commands() []*discordgo.ApplicationCommand {
	minLimit := float64(MinSearchLimit)

	return []*discordgo.ApplicationCommand{
		{
			Name:        string(CommandJoke),
			Description: "Get a random dad joke",
		},
		{
			Name:        string(CommandJokeID),
			Description: "Get a specific joke by ID",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        OptionID,
					Description: "The joke ID",
					Required:    true,
				},
			},
		},
		{
			Name:        string(CommandSearch),
			Description: "Search for dad jokes",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        OptionTerm,
					Description: "Search term",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        OptionLimit,
					Description: "Number of results (1-10)",
					MinValue:    &minLimit,
					MaxValue:    MaxSearchLimit,
				},
			},
		},
		{
			Name:        string(CommandHelp),
			Description: "Show bot commands and information",
		},
	}
}

// EventFromInteraction converts slash command data into a CommandEvent.
// String options become string values and integer options int64 values.
func EventFromInteraction(data discordgo.ApplicationCommandInteractionData) CommandEvent {
	ev := CommandEvent{
		Name:    CommandName(data.Name),
		Options: make(map[string]any, len(data.Options)),
	}
	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			ev.Options[opt.Name] = opt.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			ev.Options[opt.Name] = opt.IntValue()
		default:
			ev.Options[opt.Name] = opt.Value
		}
	}
	return ev
}
