package config

import (
	"os"
	"strconv"
	"time"

	"matrixdiff/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Embed EmbedConfig
}

// EmbedConfig holds embedding service settings
type EmbedConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	MaxRetries  int
	Concurrency int
}

// DefaultModel is the embedding model the report was calibrated against;
// the severity thresholds assume its score distribution.
const DefaultModel = "models/text-embedding-004"

// Load reads configuration from environment variables. The API key is
// optional here because the lexical comparison mode needs no credential;
// callers that embed must check RequireAPIKey before any processing.
func Load() (*Config, error) {
	embed, err := loadEmbedConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load embedding configuration")
	}
	return &Config{Embed: *embed}, nil
}

// RequireAPIKey validates that an embedding credential is present.
func (c *Config) RequireAPIKey() error {
	if c.Embed.APIKey == "" {
		return errors.ConfigInvalid("GEMINI_API_KEY (or GOOGLE_API_KEY) is required for semantic comparison")
	}
	return nil
}

func loadEmbedConfig() (*EmbedConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}

	cfg := &EmbedConfig{
		APIKey:      apiKey,
		Model:       getEnvOrDefault("EMBED_MODEL", DefaultModel),
		BaseURL:     getEnvOrDefault("EMBED_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		Timeout:     getEnvDurationOrDefault("EMBED_TIMEOUT", 30*time.Second),
		MaxRetries:  getEnvIntOrDefault("EMBED_MAX_RETRIES", 3),
		Concurrency: getEnvIntOrDefault("EMBED_CONCURRENCY", 1),
	}

	if cfg.Timeout <= 0 {
		return nil, errors.ConfigInvalid("EMBED_TIMEOUT must be positive")
	}
	if cfg.MaxRetries < 0 {
		return nil, errors.ConfigInvalid("EMBED_MAX_RETRIES must not be negative")
	}
	if cfg.Concurrency < 1 {
		return nil, errors.ConfigInvalid("EMBED_CONCURRENCY must be at least 1")
	}
	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
