// ABOUTME: Centralized configuration for the SQL agent
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the agent
type Config struct {
	// Store settings
	DBPath string

	// OpenAI settings
	OpenAIKey  string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// Logging
	LogPath string

	// HTTP server
	Addr string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:     getEnv("SQLAGENT_DB_PATH", DefaultDBPath()),
		OpenAIKey:  os.Getenv("OPENAI_API_KEY"),
		ChatModel:  getEnv("SQLAGENT_OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:    getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries: getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay: getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		LogPath:    getEnv("SQLAGENT_LOG_PATH", filepath.Join("logs", "sql_agent.log")),
		Addr:       getEnv("SQLAGENT_ADDR", ":8080"),
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration bounds. The API key is checked separately by
// commands that actually reach the gateway.
func (c *Config) Validate() error {
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive, got %v", c.Timeout)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("OPENAI_RETRY_DELAY must not be negative, got %v", c.RetryDelay)
	}
	if c.DBPath == "" {
		return fmt.Errorf("SQLAGENT_DB_PATH must not be empty")
	}
	return nil
}

// RequireOpenAIKey returns an error if no API key is configured
func (c *Config) RequireOpenAIKey() error {
	if c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}

// DefaultDBPath returns the default database file path
func DefaultDBPath() string {
	return filepath.Join("data", "database.db")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
