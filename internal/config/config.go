// Package config loads the bot's runtime configuration from the global config
// file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
)

// Environment variables, highest precedence.
const (
	EnvDiscordToken = "DISCORD_TOKEN"
	EnvGuildID      = "DISCORD_GUILD_ID"
	EnvBaseURL      = "DADJOKES_BASE_URL"
)

// DotEnvFile is loaded from the working directory if present.
const DotEnvFile = ".env"

// ErrMissingToken is returned when no Discord token is configured.
var ErrMissingToken = errors.New(EnvDiscordToken + " is not set")

// Config is the bot's resolved runtime configuration.
type Config struct {
	DiscordToken string
	GuildID      string // Empty registers commands globally
	BaseURL      string
	UserAgent    string
	Debug        bool
}

// Load resolves configuration. Sources, lowest precedence first: defaults,
// the global config file, then the environment. A .env file in the working
// directory is loaded into the environment first without overriding
// variables that are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading %s: %w", DotEnvFile, err)
	}

	global, err := LoadGlobalConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DiscordToken: global.DiscordToken,
		GuildID:      global.GuildID,
		BaseURL:      jokes.BaseURL,
		UserAgent:    jokes.UserAgent,
		Debug:        global.Debug,
	}
	if global.BaseURL != "" {
		cfg.BaseURL = global.BaseURL
	}
	if global.UserAgent != "" {
		cfg.UserAgent = global.UserAgent
	}

	if v := os.Getenv(EnvDiscordToken); v != "" {
		cfg.DiscordToken = v
	}
	if v := os.Getenv(EnvGuildID); v != "" {
		cfg.GuildID = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}

	return cfg, nil
}

// Validate checks the settings required to connect to Discord.
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return ErrMissingToken
	}
	return nil
}

// JokesOptions returns the client options this configuration implies.
func (c *Config) JokesOptions() []jokes.ClientOption {
	return []jokes.ClientOption{
		jokes.WithBaseURL(c.BaseURL),
		jokes.WithUserAgent(c.UserAgent),
	}
}
