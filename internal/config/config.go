// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the HTTP server needs to start. The Gemini key
// is optional: without it every escape plan comes from the deterministic
// generator.
type Config struct {
	Port           int
	DatabaseURL    string
	GeminiAPIKey   string
	AllowedOrigins string
}

// Load reads the server configuration from environment variables.
// PORT defaults to 8080, DATABASE_URL is required, GEMINI_API_KEY and
// ALLOWED_ORIGINS are optional.
func Load() (*Config, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	cfg := &Config{
		Port:           port,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
