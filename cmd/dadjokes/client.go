package main

import (
	"errors"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/config"
	"github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
)

// loadConfig resolves configuration and applies the --base-url flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &exitError{code: ExitConfigError, err: err}
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg, nil
}

// newJokesClient builds a provider client from the resolved configuration.
func newJokesClient() (*jokes.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return jokes.NewClient(cfg.JokesOptions()...), nil
}

// providerError maps a provider failure to an exit code.
func providerError(err error) error {
	if errors.Is(err, jokes.ErrNotFound) {
		return &exitError{code: ExitNotFound, err: err}
	}
	return &exitError{code: ExitProviderError, err: err}
}
