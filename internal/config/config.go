// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings. Every field comes from an
// environment variable; a .env file loaded at startup can supply them
// during development.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"8080"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSAllowOrigin is the value of the Access-Control-Allow-Origin
	// header, typically the frontend origin.
	CORSAllowOrigin string `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`

	// GeminiAPIKey enables the receipt-scan endpoint when set.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// GeminiModel is the model used for receipt extraction.
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
}

// Load parses configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would fail at runtime.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.GeminiAPIKey != "" && c.GeminiModel == "" {
		return fmt.Errorf("GEMINI_MODEL cannot be empty when GEMINI_API_KEY is set")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
