package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variable names for overrides.
const (
	EnvConfig  = "ONEDRIVE_PROVIDER_CONFIG"
	EnvBaseURL = "ONEDRIVE_PROVIDER_BASE_URL"
	EnvToken   = "ONEDRIVE_PROVIDER_TOKEN"
)

// knownKeys are the valid top-level keys in the config file, used for
// unknown-key rejection.
var knownKeys = map[string]bool{
	"base_url": true, "site_concurrency": true, "http_timeout": true, "log_level": true,
}

// Load reads and parses a TOML config file, rejects unknown keys, validates
// the result, and returns it. Fields absent from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := checkUnknownKeys(&md); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault reads a TOML config file if it exists, otherwise returns a
// Config populated with all default values. Supports the zero-config
// first-run experience.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// Resolve loads configuration and applies the override chain:
// defaults -> config file -> environment variables. CLI flags are applied by
// the caller afterwards because flags always win.
func Resolve() (*Config, error) {
	cfg, err := LoadOrDefault(os.Getenv(EnvConfig))
	if err != nil {
		return nil, err
	}

	if base := os.Getenv(EnvBaseURL); base != "" {
		cfg.BaseURL = base
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// checkUnknownKeys inspects TOML metadata for undecoded keys and returns an
// error listing every unknown key with the full set of valid keys, so a
// typo is caught at startup instead of silently using a default.
func checkUnknownKeys(md *toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}

	valid := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		valid = append(valid, k)
	}

	sort.Strings(valid)

	names := make([]string, 0, len(undecoded))
	for _, key := range undecoded {
		names = append(names, key.String())
	}

	return fmt.Errorf("unknown config keys: %s (valid keys: %s)",
		strings.Join(names, ", "), strings.Join(valid, ", "))
}
