package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultSiteConcurrency, cfg.SiteConcurrency)
	assert.Equal(t, DefaultHTTPTimeout, cfg.Timeout())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
base_url = "http://localhost:9999/v1.0"
site_concurrency = 2
http_timeout = "5s"
log_level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v1.0", cfg.BaseURL)
	assert.Equal(t, 2, cfg.SiteConcurrency)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `site_concurrency = 10`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.SiteConcurrency)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultHTTPTimeout, cfg.Timeout())
}

func TestLoad_UnknownKeyIsFatal(t *testing.T) {
	path := writeConfig(t, `site_concurency = 3`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site_concurency")
	assert.Contains(t, err.Error(), "site_concurrency")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty base url", `base_url = ""`},
		{"negative concurrency", `site_concurrency = -1`},
		{"bad log level", `log_level = "trace"`},
		{"bad duration", `http_timeout = "soon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestResolve_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `base_url = "http://from-file/v1.0"`)

	t.Setenv(EnvConfig, path)
	t.Setenv(EnvBaseURL, "http://from-env/v1.0")

	cfg, err := Resolve()
	require.NoError(t, err)

	// Env beats file.
	assert.Equal(t, "http://from-env/v1.0", cfg.BaseURL)
}

func TestResolve_NoConfig(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvBaseURL, "")

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
