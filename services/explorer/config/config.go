package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config maps to the config.toml file for the explorer service
type Config struct {
	BaseURL                 string `toml:"BaseURL"`
	RequestTimeoutSeconds   uint32 `toml:"RequestTimeoutSeconds"`
	PageDelayMillis         uint32 `toml:"PageDelayMillis"`
	DefaultMaxRecords       int    `toml:"DefaultMaxRecords"`
	MaxRecordsPerArea       int    `toml:"MaxRecordsPerArea"`
	CacheTTLSeconds         uint32 `toml:"CacheTTLSeconds"`
	ListenAddress           string `toml:"ListenAddress"`
	StaticDir               string `toml:"StaticDir"`
	HistoryDBPath           string `toml:"HistoryDBPath"`
	HistoryRetentionSeconds int    `toml:"HistoryRetentionSeconds"`
	HistoryLimit            int    `toml:"HistoryLimit"`
}

// LoadConfig parses a TOML file into the Config struct
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filepath, err)
	}

	var cfg Config
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://data360api.worldbank.org"
	}
	if cfg.RequestTimeoutSeconds == 0 {
		cfg.RequestTimeoutSeconds = 30
	}
	if cfg.PageDelayMillis == 0 {
		cfg.PageDelayMillis = 50
	}
	if cfg.DefaultMaxRecords <= 0 {
		cfg.DefaultMaxRecords = 10000
	}
	if cfg.MaxRecordsPerArea <= 0 {
		cfg.MaxRecordsPerArea = 5000
	}
	if cfg.CacheTTLSeconds == 0 {
		cfg.CacheTTLSeconds = 3600
	}
	if cfg.HistoryRetentionSeconds <= 0 {
		cfg.HistoryRetentionSeconds = 7 * 24 * 3600
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 50
	}
}
