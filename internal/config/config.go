// Package config provides configuration management for the pipeline tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/pkg/retry"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingBaseURL           = errors.New("api.base_url is required")
	ErrInvalidTimeout           = errors.New("api.timeout_sec must be at least 1")
	ErrInvalidMaxBody           = errors.New("api.max_body_kb must be at least 1")
	ErrInvalidPageSize          = errors.New("fetch.page_size must be between 1 and 100")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Environment variables consulted by ApplyEnv. The API key is env-only and
// never read from or written to YAML.
const (
	EnvAPIKey  = "NEWS_API_KEY"
	EnvBaseURL = "NEWS_API_BASE_URL"
)

// Config represents the complete pipeline configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Output  OutputConfig  `yaml:"output"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
	Retry   RetryConfig   `yaml:"retry"`
}

// APIConfig contains upstream endpoint settings.
type APIConfig struct {
	Key        string `yaml:"-"`
	BaseURL    string `yaml:"base_url"`
	TimeoutSec int    `yaml:"timeout_sec"`
	MaxBodyKB  int    `yaml:"max_body_kb"`
}

// FetchConfig contains the default query parameters for remote fetches.
type FetchConfig struct {
	Keyword  string `yaml:"keyword"`
	Language string `yaml:"language"`
	PageSize int    `yaml:"page_size"`
}

// OutputConfig defines where exports land and under which names. Empty
// filenames select timestamped defaults.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	JSONFile string `yaml:"json_file"`
	CSVFile  string `yaml:"csv_file"`
}

// DisplayConfig defines console rendering behavior.
type DisplayConfig struct {
	Quiet       bool `yaml:"quiet"`
	FullContent bool `yaml:"full_content"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// RetryConfig defines retry behavior for remote fetches.
type RetryConfig struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    "https://newsapi.org/v2",
			TimeoutSec: 10,
			MaxBodyKB:  4096,
		},
		Fetch: FetchConfig{
			Language: "en",
			PageSize: 20,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Retry: RetryConfig{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
		},
	}
}

// Load reads YAML configuration from filepath on top of the defaults.
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment values, loading a .env file first when one
// exists in the working directory. Existing environment variables win over
// .env entries.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if key := os.Getenv(EnvAPIKey); key != "" {
		c.API.Key = key
	}

	if base := os.Getenv(EnvBaseURL); base != "" {
		c.API.BaseURL = base
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if c.API.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.API.MaxBodyKB < 1 {
		return ErrInvalidMaxBody
	}

	if c.Fetch.PageSize < 1 || c.Fetch.PageSize > 100 {
		return ErrInvalidPageSize
	}

	if c.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Timeout returns the per-request HTTP timeout.
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// MaxBodyBytes returns the response body read limit in bytes.
func (c *APIConfig) MaxBodyBytes() int64 {
	return int64(c.MaxBodyKB) * 1024
}

// Policy converts the retry settings into an executable retry policy.
func (c *RetryConfig) Policy() retry.Policy {
	return retry.Policy{
		MaxAttempts:  c.MaxAttempts,
		InitialDelay: time.Duration(c.InitialDelayMs) * time.Millisecond,
		MaxDelay:     time.Duration(c.MaxDelayMs) * time.Millisecond,
		Multiplier:   c.BackoffMultiplier,
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{BaseURL: %s, MaxAttempts: %d, Output: %s}",
		c.API.BaseURL,
		c.Retry.MaxAttempts,
		c.Output.Dir,
	)
}
