package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/vlysnebek/scrollgen/pkg/scroll"
)

// GenerationConfig holds the default title shape used when no flags
// override it.
type GenerationConfig struct {
	MinSyllables    int `json:"min_syllables"`
	MaxSyllables    int `json:"max_syllables"`
	MinWords        int `json:"min_words"`
	MaxWords        int `json:"max_words"`
	ConnectorChance int `json:"connector_chance"`
}

// Config is the top-level configuration struct for the CLI.
type Config struct {
	LogLevel     string            `json:"log_level"`
	DatabasePath string            `json:"database_path"`
	Generation   *GenerationConfig `json:"generation_config"`
}

// DefaultConfig creates a configuration with the classic Rogue values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		DatabasePath: "./scrollgen.db",
		Generation: &GenerationConfig{
			MinSyllables:    scroll.DefaultMinSyllables,
			MaxSyllables:    scroll.DefaultMaxSyllables,
			MinWords:        scroll.DefaultMinWords,
			MaxWords:        scroll.DefaultMaxWords,
			ConnectorChance: scroll.DefaultConnectorChance,
		},
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Keep going with defaults; the CLI works without a config file.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
