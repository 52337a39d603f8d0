package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kotaroooo0/emojifish"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	storageEmbedded = "embedded"
	storageRdb      = "rdb"

	analyzerEnglish  = "english"
	analyzerJapanese = "japanese"
)

type Config struct {
	Storage       string             `yaml:"storage"`
	Database      emojifish.DBConfig `yaml:"database"`
	LogLevel      string             `yaml:"log_level"`
	QueryAnalyzer string             `yaml:"query_analyzer"`
}

func defaultConfig() *Config {
	return &Config{
		Storage:       storageEmbedded,
		LogLevel:      zerolog.InfoLevel.String(),
		QueryAnalyzer: analyzerEnglish,
	}
}

// loadConfig falls back to the defaults when path does not exist.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case storageEmbedded:
	case storageRdb:
		if _, err := c.Database.DSN(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	switch c.QueryAnalyzer {
	case analyzerEnglish, analyzerJapanese:
	default:
		return fmt.Errorf("unknown query analyzer %q", c.QueryAnalyzer)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
