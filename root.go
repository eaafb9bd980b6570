// Command onedrive-provider exercises the OneDrive provider adapter from the
// command line: listing drives, sites, and folders, downloading content, and
// checking item sizes. It exists for manual testing and operations work — the
// orchestration service consumes the adapter as a library.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/fileferry/onedrive-provider/internal/config"
	"github.com/fileferry/onedrive-provider/onedrive"
)

// version is set at build time via ldflags.
var version = "dev"

// Global persistent flags, bound in newRootCmd().
var (
	flagConfigPath string
	flagBaseURL    string
	flagToken      string
	flagJSON       bool
	flagVerbose    bool
	flagQuiet      bool
)

// resolvedCfg holds the effective configuration loaded by PersistentPreRunE.
var resolvedCfg *config.Config

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "onedrive-provider",
		Short:   "OneDrive provider adapter CLI",
		Long:    "Exercise the OneDrive provider adapter: list drives, sites, and folders, download content, check sizes.",
		Version: version,
		// Silence Cobra's default error/usage printing — main() handles it.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Graph API base URL override")
	cmd.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token (or "+config.EnvToken+")")
	cmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress informational output")

	cmd.AddCommand(newLsCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newStatCmd())
	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newLogoutCmd())

	return cmd
}

// loadConfig resolves the effective configuration from the override chain
// (defaults -> file -> env) and applies CLI flags on top, because flags
// always win.
func loadConfig() error {
	cfg, err := resolveConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagConfigPath != "" {
		cfg, err = config.Load(flagConfigPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}

	resolvedCfg = cfg

	return nil
}

// resolveConfig is separated so --config can bypass env-based path lookup.
func resolveConfig() (*config.Config, error) {
	return config.Resolve()
}

// buildAdapter constructs the adapter from the resolved config.
func buildAdapter() *onedrive.Adapter {
	return onedrive.New(onedrive.Options{
		BaseURL:         resolvedCfg.BaseURL,
		HTTPClient:      &http.Client{Timeout: resolvedCfg.Timeout()},
		SiteConcurrency: resolvedCfg.SiteConcurrency,
		Logger:          buildLogger(),
	})
}

// resolveToken returns the bearer token from the --token flag or the
// environment. Operations that call the Graph API require it.
func resolveToken() (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}

	if tok := os.Getenv(config.EnvToken); tok != "" {
		return tok, nil
	}

	return "", fmt.Errorf("no token: pass --token or set %s", config.EnvToken)
}

// buildLogger creates an slog.Logger configured by the resolved config and
// CLI flags. Config-file log level provides the baseline; --verbose and
// --quiet override it because CLI flags always win.
func buildLogger() *slog.Logger {
	level := slog.LevelInfo

	if resolvedCfg != nil {
		switch resolvedCfg.LogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	if flagVerbose {
		level = slog.LevelDebug
	}

	if flagQuiet {
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
