// Package cli provides the cobra commands for psychmatch.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/psychmatch/internal/adapters/driven/config/env"
	"github.com/custodia-labs/psychmatch/internal/app"
	"github.com/custodia-labs/psychmatch/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

var (
	verbose   bool
	configDir string
	envFiles  []string

	// application is loaded on first use by commands that need services.
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "psychmatch",
	Short: "Matchmaking on an in-memory document store with materialized views",
	Long: `psychmatch stores users and messages as documents and keeps three
views current after every write: users, matches and messages.

Serve the HTTP API with "psychmatch serve", expose it to AI assistants with
"psychmatch mcp serve", or run "psychmatch demo" for a quick walkthrough.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.psychmatch)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	defer logger.Sync() //nolint:errcheck
	return rootCmd.ExecuteContext(ctx)
}

// SetApp replaces the application used by commands.
func SetApp(a *app.App) {
	application = a
}

// loadApp returns the configured application, loading it on first use.
func loadApp() (*app.App, error) {
	if application != nil {
		return application, nil
	}

	if err := env.LoadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	a, err := app.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	application = a
	return a, nil
}
