package ai

import (
	"errors"
	"os"
	"strings"
)

const (
	// DefaultHost is the Hugging Face inference router's OpenAI-compatible endpoint.
	DefaultHost = "https://router.huggingface.co/v1"

	// DefaultModel is the chat model used for summaries.
	DefaultModel = "deepseek-ai/DeepSeek-V3.2-Exp:novita"

	// TokenEnvVar is consulted when no token is configured.
	TokenEnvVar = "HUGGINGFACE_TOKEN"
)

type Config struct {
	// Host is the base URL for the chat-completion API.
	// Example: "https://router.huggingface.co/v1", "http://localhost:11434/v1"
	Host string

	// Model is the model identifier to use for summaries.
	// Example: "deepseek-ai/DeepSeek-V3.2-Exp:novita", "qwen2.5:3b"
	Model string

	// Token is the bearer token sent with every request.
	// When empty, the value of HUGGINGFACE_TOKEN is used; local servers
	// that need no authentication accept any token.
	Token string

	// Temperature controls sampling randomness, between 0 and 2.
	// Default: 0.3
	Temperature float64
}

type ConfigOption func(*Config)

func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

func WithTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

func DefaultConfig() *Config {
	return &Config{
		Host:        DefaultHost,
		Model:       DefaultModel,
		Temperature: 0.3,
	}
}

func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *Config) Normalize() {
	// Ensure Host ends with /v1 for OpenAI-compatible APIs
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		// Remove trailing slash if present before adding /v1
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
	if c.Token == "" {
		c.Token = os.Getenv(TokenEnvVar)
	}
}

func (c *Config) Validate() error {
	// Normalize first to ensure the host is in the correct format
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("ai config: Temperature must be between 0 and 2")
	}
	return nil
}
