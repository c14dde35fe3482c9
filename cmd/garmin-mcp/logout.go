// ABOUTME: CLI command for clearing stored tokens.
// ABOUTME: Clears stored tokens from the token directory.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored tokens",
	Long: `Remove the OAuth tokens stored in GARMINTOKENS.

The next 'login' or 'mcp' run will authenticate with credentials again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		if err := client.Logout(); err != nil {
			return fmt.Errorf("failed to clear tokens: %w", err)
		}

		color.Green("✓ Stored tokens removed")
		fmt.Printf("  Token dir: %s\n", cfg.TokenDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
