// ABOUTME: Root Cobra command for the garmin-mcp CLI.
// ABOUTME: Loads env configuration and builds the Garmin client for subcommands.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/harperreed/garmin-mcp/internal/config"
	"github.com/harperreed/garmin-mcp/internal/garmin"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	logger  *slog.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "garmin-mcp",
	Short: "Garmin Connect MCP server",
	Long: `garmin-mcp exposes a Garmin Connect account to AI assistants over the
Model Context Protocol. Activities, daily health metrics, devices,
gear, training data, and more become callable tools.

CONFIGURATION:

  Set credentials in the environment or a .env file in the working
  directory:

    GARMIN_EMAIL=you@example.com
    GARMIN_PASSWORD=...
    GARMINTOKENS=~/.garminconnect   # token store dir (optional)
    GARMIN_DOMAIN=garmin.com        # or garmin.cn

  After the first login, OAuth tokens are cached in GARMINTOKENS and
  credentials are no longer needed.

QUICK START:

  $ garmin-mcp login        # Authenticate and store tokens
  $ garmin-mcp status       # Check token state
  $ garmin-mcp activities   # List recent activities
  $ garmin-mcp mcp          # Serve MCP over stdio

MCP INTEGRATION:

  Add to your Claude Desktop config:

  {
    "mcpServers": {
      "garmin": { "command": "garmin-mcp", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// stdout belongs to the MCP protocol; all logging goes to stderr.
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger.Debug("configuration loaded", "config", cfg)
		return nil
	},
}

// newClient builds the Garmin client from the loaded configuration.
func newClient() *garmin.Client {
	return garmin.New(garmin.Options{
		Email:    cfg.Email,
		Password: cfg.Password,
		TokenDir: cfg.TokenDir,
		Domain:   cfg.Domain,
		Logger:   logger,
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
