// Package config loads the provider CLI configuration from a TOML file with
// environment variable and flag overrides layered on top. Unknown keys are
// fatal — silently ignoring a typo in a config file leads to hard-to-debug
// behavior.
package config

import (
	"fmt"
	"time"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultBaseURL         = "https://graph.microsoft.com/v1.0"
	DefaultSiteConcurrency = 5
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultLogLevel        = "info"
)

// Config is the on-disk configuration shape.
type Config struct {
	// BaseURL is the Graph API endpoint. Overridable for testing against a
	// fake server.
	BaseURL string `toml:"base_url"`

	// SiteConcurrency bounds the per-site drive fetch fan-out during
	// SharePoint sites listing.
	SiteConcurrency int `toml:"site_concurrency"`

	// HTTPTimeout is the per-request timeout for Graph calls.
	HTTPTimeout duration `toml:"http_timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// duration wraps time.Duration for TOML decoding of strings like "30s".
type duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML string values.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", text, err)
	}

	*d = duration(parsed)

	return nil
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:         DefaultBaseURL,
		SiteConcurrency: DefaultSiteConcurrency,
		HTTPTimeout:     duration(DefaultHTTPTimeout),
		LogLevel:        DefaultLogLevel,
	}
}

// Timeout returns the HTTP timeout as a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout)
}

// validLogLevels are the accepted log_level values.
var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks field values after decoding and overrides.
func Validate(cfg *Config) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}

	if cfg.SiteConcurrency <= 0 {
		return fmt.Errorf("site_concurrency must be positive, got %d", cfg.SiteConcurrency)
	}

	if cfg.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %v", time.Duration(cfg.HTTPTimeout))
	}

	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	return nil
}
