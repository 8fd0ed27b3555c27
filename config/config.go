// Package config provides configuration loading for the pubcat command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/poiesic/pubcat/ai"
	"gopkg.in/yaml.v3"
)

// DefaultSource is the catalog file the command reads when none is configured.
const DefaultSource = "data/SB_publication_PMC.csv"

// Config represents the complete pubcat configuration
type Config struct {
	// Source is the catalog location: a file path, file:// URL or http(s) URL
	Source string      `yaml:"source"`
	AI     AIConfig    `yaml:"ai"`
	Cache  CacheConfig `yaml:"cache"`
	Warm   WarmConfig  `yaml:"warm"`
}

// AIConfig configures the summarization model
type AIConfig struct {
	// Host is the OpenAI-compatible endpoint
	Host string `yaml:"host"`
	// Model is the chat model identifier
	Model string `yaml:"model"`
	// Token is the bearer token; falls back to HUGGINGFACE_TOKEN when empty
	Token string `yaml:"token"`
	// Temperature controls randomness (0.0-2.0)
	Temperature float64 `yaml:"temperature"`
	// Offline replaces the model with fixed canned text
	Offline bool `yaml:"offline"`
}

// CacheConfig configures the summary cache
type CacheConfig struct {
	// Dir is the cache directory (empty = in-memory, lost on exit)
	Dir string `yaml:"dir"`
	// TTL is how long cached summaries live (0 = forever)
	TTL time.Duration `yaml:"ttl"`
}

// WarmConfig configures batch summary warming
type WarmConfig struct {
	Workers        int     `yaml:"workers"`
	Rate           float64 `yaml:"rate"`
	ReportInterval int     `yaml:"report_interval"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source: DefaultSource,
		AI: AIConfig{
			Host:        ai.DefaultHost,
			Model:       ai.DefaultModel,
			Temperature: 0.3,
		},
		Cache: CacheConfig{
			TTL: 24 * time.Hour,
		},
		Warm: WarmConfig{
			Workers:        4,
			Rate:           2,
			ReportInterval: 10,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error
	if c.Source == "" {
		errs = append(errs, errors.New("source is required"))
	}
	if !c.AI.Offline {
		if c.AI.Host == "" {
			errs = append(errs, errors.New("ai.host is required"))
		}
		if c.AI.Model == "" {
			errs = append(errs, errors.New("ai.model is required"))
		}
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		errs = append(errs, errors.New("ai.temperature must be between 0 and 2"))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, errors.New("cache.ttl must not be negative"))
	}
	if c.Warm.Workers < 1 {
		errs = append(errs, errors.New("warm.workers must be at least 1"))
	}
	if c.Warm.Rate < 0 {
		errs = append(errs, errors.New("warm.rate must not be negative"))
	}
	return errors.Join(errs...)
}

// AIOptions converts the model settings to ai.Config options.
func (c *Config) AIOptions() []ai.ConfigOption {
	return []ai.ConfigOption{
		ai.WithHost(c.AI.Host),
		ai.WithModel(c.AI.Model),
		ai.WithToken(c.AI.Token),
		ai.WithTemperature(c.AI.Temperature),
	}
}

// LoadFromFile loads configuration from a YAML file.
// Keys absent from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Load returns the defaults when path is empty, otherwise the file's contents
// layered over the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFromFile(path)
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
