// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Telegram describes the bot transport. The token normally arrives through the
// TELEGRAM_API_TOKEN environment variable; the YAML field is a fallback for
// local runs. A zero GroupChatID disables the group forward entirely. ApiURL
// points at a self-hosted Bot API server; empty selects the public one.
type Telegram struct {
	Token           string `yaml:"token"`
	ApiURL          string `yaml:"api_url"`
	GroupChatID     int64  `yaml:"group_chat_id"`
	PollTimeoutSecs int    `yaml:"poll_timeout_secs"`
}

// Journal configures the append-only record of quote outcomes. An empty path
// disables journaling.
type Journal struct {
	Path string `yaml:"path"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App      App      `yaml:"app"`
	Telegram Telegram `yaml:"telegram"`
	Dex      Dex      `yaml:"dex"`
	Wallet   Wallet   `yaml:"wallet"`
	Journal  Journal  `yaml:"journal"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
