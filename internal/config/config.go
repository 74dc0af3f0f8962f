// Package config holds recipro's user-tunable settings and loads them from
// an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/recipro/internal/logging"
	"github.com/katalvlaran/recipro/mapping"
)

// ErrInvalidConfig is returned by Validate and Load for unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "recipro.yaml"

// Config holds application settings.
type Config struct {
	// SelfPairPolicy is "skip" or "allow"; see mapping.SelfPairPolicy.
	SelfPairPolicy string `yaml:"self_pair_policy"`

	// TrigramLimit is how many trigrams "show" prints.
	TrigramLimit int `yaml:"trigram_limit"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // text | json

	// DBPath is the SQLite file used for saved sessions.
	DBPath string `yaml:"db_path"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		SelfPairPolicy: mapping.SkipSelfPair.String(),
		TrigramLimit:   10,
		LogLevel:       "warn",
		LogFormat:      "text",
		DBPath:         "recipro.db",
	}
}

// Load reads path as YAML over Default. A missing file is not an error:
// the defaults are returned as they are.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and reports the first offending one.
func (c *Config) Validate() error {
	if _, err := mapping.ParseSelfPairPolicy(c.SelfPairPolicy); err != nil {
		return fmt.Errorf("%w: self_pair_policy: %w", ErrInvalidConfig, err)
	}
	if c.TrigramLimit < 1 {
		return fmt.Errorf("%w: trigram_limit must be >= 1, got %d", ErrInvalidConfig, c.TrigramLimit)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%w: db_path is empty", ErrInvalidConfig)
	}

	return nil
}

// Policy returns the parsed self-pair policy. Call Validate first.
func (c *Config) Policy() mapping.SelfPairPolicy {
	p, _ := mapping.ParseSelfPairPolicy(c.SelfPairPolicy)
	return p
}
