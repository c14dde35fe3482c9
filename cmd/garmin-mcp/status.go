// ABOUTME: CLI command for showing authentication status.
// ABOUTME: Reports stored token state without making any API call.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/garmin-mcp/internal/garmin"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long: `Show the state of the stored OAuth tokens:
- whether a token pair exists in GARMINTOKENS
- whether the short-lived bearer is current or due for refresh
- whether credentials are available for a fresh login`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Domain:   ", cfg.Domain)
		fmt.Println("Token dir:", cfg.TokenDir)
		fmt.Println()

		store := garmin.NewTokenStore(cfg.TokenDir)
		_, t2, err := store.Load()
		switch {
		case errors.Is(err, garmin.ErrNoTokens):
			color.Yellow("No stored tokens")
			if cfg.HasCredentials() {
				fmt.Println("\nCredentials are set; run 'garmin-mcp login' to authenticate.")
			} else {
				fmt.Println("\nSet GARMIN_EMAIL and GARMIN_PASSWORD, then run 'garmin-mcp login'.")
			}
			return nil
		case err != nil:
			return err
		}

		color.Green("✓ Token pair stored")
		if t2.Expired() {
			color.Yellow("  Bearer token expired; it will refresh on the next API call")
		} else {
			fmt.Printf("  Bearer token valid until %s\n",
				time.Unix(t2.ExpiresAt, 0).Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
