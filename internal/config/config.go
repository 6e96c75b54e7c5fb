// Package config loads the application configuration from a YAML file,
// falling back to defaults when no file exists.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SelectorConfig picks and tunes the term-selection strategy.
type SelectorConfig struct {
	Type        string  `yaml:"type"` // "tfidf" or "rocchio"
	MaxNewTerms int     `yaml:"max_new_terms"`
	Alpha       float64 `yaml:"alpha"`
	Beta        float64 `yaml:"beta"`
	Gamma       float64 `yaml:"gamma"`
}

// IndexingConfig controls per-iteration document indexing.
type IndexingConfig struct {
	FullText         bool `yaml:"full_text"`
	FetchTimeoutSecs int  `yaml:"fetch_timeout_secs"`
	FetchConcurrency int  `yaml:"fetch_concurrency"`
}

// TokenizerConfig controls text normalization.
type TokenizerConfig struct {
	Stemming bool `yaml:"stemming"`
}

// OrdererConfig points at the reference corpus for bigram ordering. An
// empty path disables reordering.
type OrdererConfig struct {
	CorpusPath string `yaml:"corpus_path"`
}

// SearchConfig tunes the retrieval client.
type SearchConfig struct {
	TimeoutSecs int `yaml:"timeout_secs"`
}

// UIConfig selects the judgment frontend.
type UIConfig struct {
	Mode string `yaml:"mode"` // "tui" or "plain"
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// AppConfig is the root configuration.
type AppConfig struct {
	Selector  SelectorConfig  `yaml:"selector"`
	Indexing  IndexingConfig  `yaml:"indexing"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Orderer   OrdererConfig   `yaml:"orderer"`
	Search    SearchConfig    `yaml:"search"`
	UI        UIConfig        `yaml:"ui"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Load reads a config from path. A missing file yields the defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Selector.Type == "" {
		cfg.Selector.Type = "tfidf"
	}
	if cfg.Selector.MaxNewTerms == 0 {
		cfg.Selector.MaxNewTerms = 2
	}
	if cfg.Selector.Alpha == 0 {
		cfg.Selector.Alpha = 1.0
	}
	if cfg.Selector.Beta == 0 {
		cfg.Selector.Beta = 0.75
	}
	if cfg.Selector.Gamma == 0 {
		cfg.Selector.Gamma = 0.15
	}
	if cfg.Indexing.FetchTimeoutSecs == 0 {
		cfg.Indexing.FetchTimeoutSecs = 5
	}
	if cfg.Indexing.FetchConcurrency == 0 {
		cfg.Indexing.FetchConcurrency = 4
	}
	if cfg.Search.TimeoutSecs == 0 {
		cfg.Search.TimeoutSecs = 15
	}
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "tui"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

func validate(cfg *AppConfig) error {
	switch cfg.Selector.Type {
	case "tfidf", "rocchio":
	default:
		return fmt.Errorf("unknown selector type: %s", cfg.Selector.Type)
	}
	switch cfg.UI.Mode {
	case "tui", "plain":
	default:
		return fmt.Errorf("unknown ui mode: %s", cfg.UI.Mode)
	}
	return nil
}
