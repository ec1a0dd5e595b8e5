package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pratyush0898/DadJokes-discord-bot/internal/jokes"
)

// withTempWorkDir creates a temp directory and changes to it for the test.
func withTempWorkDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldDir) })
	return tmpDir
}

// isolateEnv points the global config at an empty directory and unsets the
// bot's environment variables for the duration of the test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	for _, key := range []string{EnvDiscordToken, EnvGuildID, EnvBaseURL} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	withTempWorkDir(t)
	return xdg
}

func writeGlobalConfig(t *testing.T, xdg, content string) {
	t.Helper()
	dir := filepath.Join(xdg, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	want := "/custom/config/dadjokes/config.yml"
	if got := GlobalConfigPath(); got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != jokes.BaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, jokes.BaseURL)
	}
	if cfg.UserAgent != jokes.UserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, jokes.UserAgent)
	}
	if cfg.DiscordToken != "" {
		t.Errorf("DiscordToken = %q, want empty", cfg.DiscordToken)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingToken) {
		t.Errorf("Validate() = %v, want ErrMissingToken", err)
	}
}

func TestLoad_GlobalConfig(t *testing.T) {
	xdg := isolateEnv(t)
	writeGlobalConfig(t, xdg, `discord_token: file-token
guild_id: "1234"
base_url: http://localhost:9999
debug: true
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DiscordToken != "file-token" {
		t.Errorf("DiscordToken = %q", cfg.DiscordToken)
	}
	if cfg.GuildID != "1234" {
		t.Errorf("GuildID = %q", cfg.GuildID)
	}
	if cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	xdg := isolateEnv(t)
	writeGlobalConfig(t, xdg, "discord_token: file-token\n")
	t.Setenv(EnvDiscordToken, "env-token")
	t.Setenv(EnvBaseURL, "http://env:1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DiscordToken != "env-token" {
		t.Errorf("DiscordToken = %q, want env-token", cfg.DiscordToken)
	}
	if cfg.BaseURL != "http://env:1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	isolateEnv(t)
	if err := os.WriteFile(DotEnvFile, []byte("DISCORD_TOKEN=dotenv-token\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvDiscordToken) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DiscordToken != "dotenv-token" {
		t.Errorf("DiscordToken = %q, want dotenv-token", cfg.DiscordToken)
	}
}

func TestLoad_InvalidGlobalConfig(t *testing.T) {
	xdg := isolateEnv(t)
	writeGlobalConfig(t, xdg, "discord_token: [unterminated\n")

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestJokesOptions(t *testing.T) {
	cfg := &Config{BaseURL: "http://stub", UserAgent: "agent"}
	c := jokes.NewClient(cfg.JokesOptions()...)
	if c.BaseURL() != "http://stub" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
}
