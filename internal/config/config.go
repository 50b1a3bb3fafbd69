// Package config holds the client configuration: the service base URL and
// the code dimensions the game is played with. Values come from defaults,
// an optional codebreak.yaml, then environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultBaseURL     = "https://api.codebreak.dev"
	DefaultMaxAttempts = 10
	DefaultCodeLength  = 4
	DefaultMinDigit    = 1
	DefaultMaxDigit    = 6
)

// Environment variables recognized by Load.
const (
	EnvBaseURL  = "CODEBREAK_BASE_URL"
	EnvLogLevel = "CODEBREAK_LOG_LEVEL"
)

// Config describes one game setup. The code dimensions are fixed for a
// given server; they are named here rather than scattered as literals.
type Config struct {
	BaseURL     string `yaml:"base_url"`
	MaxAttempts int    `yaml:"max_attempts"`
	CodeLength  int    `yaml:"code_length"`
	MinDigit    int    `yaml:"min_digit"`
	MaxDigit    int    `yaml:"max_digit"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		MaxAttempts: DefaultMaxAttempts,
		CodeLength:  DefaultCodeLength,
		MinDigit:    DefaultMinDigit,
		MaxDigit:    DefaultMaxDigit,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Load reads codebreak.yaml from the given base path. If the file does
// not exist, defaults are used. Missing fields keep their defaults.
// CODEBREAK_BASE_URL overrides the base URL from either source.
func Load(basePath string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := filepath.Join(basePath, "codebreak.yaml")
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if u := os.Getenv(EnvBaseURL); u != "" {
		cfg.BaseURL = u
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all config values are usable.
func Validate(cfg *Config) error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Field: "base_url", Message: "must be an absolute URL"}
	}
	if cfg.MaxAttempts <= 0 {
		return ValidationError{Field: "max_attempts", Message: "must be positive"}
	}
	if cfg.CodeLength <= 0 {
		return ValidationError{Field: "code_length", Message: "must be positive"}
	}
	if cfg.MinDigit < 0 || cfg.MinDigit > 9 {
		return ValidationError{Field: "min_digit", Message: "must be between 0 and 9"}
	}
	if cfg.MaxDigit < 0 || cfg.MaxDigit > 9 {
		return ValidationError{Field: "max_digit", Message: "must be between 0 and 9"}
	}
	if cfg.MinDigit > cfg.MaxDigit {
		return ValidationError{Field: "min_digit", Message: "must not exceed max_digit"}
	}
	return nil
}
