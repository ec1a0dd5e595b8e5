package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/dadjokes/config.yml.
type GlobalConfig struct {
	DiscordToken string `yaml:"discord_token,omitempty"`
	GuildID      string `yaml:"guild_id,omitempty"`
	BaseURL      string `yaml:"base_url,omitempty"`
	UserAgent    string `yaml:"user_agent,omitempty"`
	Debug        bool   `yaml:"debug,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "dadjokes"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/dadjokes/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// HelpfulTokenMessage explains how to provide the Discord token.
func HelpfulTokenMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`%s is not set.

Set it in the environment or in a .env file:
  echo '%s=your-bot-token' >> .env

Or add it to %s:
  mkdir -p %s
  echo 'discord_token: your-bot-token' >> %s`,
		EnvDiscordToken, EnvDiscordToken,
		configPath, filepath.Dir(configPath), configPath)
}
