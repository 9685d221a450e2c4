package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/kelseyhightower/envconfig"
)

const (
	DefaultPrompt       = "Enter command."
	DefaultHistoryLimit = 500

	envPrefix = "ROSTER"
)

// Config aggregates presentation settings for the shell and TUI.
type Config struct {
	Prompt       string
	HistoryLimit int
	Debug        bool
}

// Default returns the settings used when no file or environment is given.
func Default() Config {
	return Config{
		Prompt:       DefaultPrompt,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// Load builds a Config from an optional JSON file path plus environment overrides
// (ROSTER_PROMPT, ROSTER_HISTORY_LIMIT, ROSTER_DEBUG). Only the file can fail
// the load; a bad environment value is logged and ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Each variable is processed on its own so one bad value does not discard the others.
func applyEnvOverrides(cfg *Config) {
	var prompt struct {
		Prompt *string
	}
	if err := envconfig.Process(envPrefix, &prompt); err != nil {
		log.Printf("ignoring invalid environment: %v", err)
	} else if prompt.Prompt != nil {
		cfg.Prompt = *prompt.Prompt
	}

	var history struct {
		HistoryLimit *int `split_words:"true"`
	}
	if err := envconfig.Process(envPrefix, &history); err != nil {
		log.Printf("ignoring invalid environment: %v", err)
	} else if history.HistoryLimit != nil {
		if *history.HistoryLimit > 0 {
			cfg.HistoryLimit = *history.HistoryLimit
		} else {
			log.Printf("ignoring %s_HISTORY_LIMIT=%d: must be > 0", envPrefix, *history.HistoryLimit)
		}
	}

	var debug struct {
		Debug *bool
	}
	if err := envconfig.Process(envPrefix, &debug); err != nil {
		log.Printf("ignoring invalid environment: %v", err)
	} else if debug.Debug != nil {
		cfg.Debug = *debug.Debug
	}
}

type fileConfig struct {
	Prompt       *string `json:"prompt"`
	HistoryLimit *int    `json:"history_limit"`
	Debug        *bool   `json:"debug"`
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.HistoryLimit != nil {
		if *raw.HistoryLimit <= 0 {
			return errors.New("history_limit must be > 0")
		}
		cfg.HistoryLimit = *raw.HistoryLimit
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
	return nil
}
