// ABOUTME: CLI command for credential login.
// ABOUTME: Authenticates with email+password and persists tokens to disk.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loginExportBase64 bool

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store tokens",
	Long: `Log in to Garmin Connect with GARMIN_EMAIL and GARMIN_PASSWORD and
store the OAuth tokens in GARMINTOKENS (default ~/.garminconnect).

Subsequent runs reuse the stored tokens; the long-lived token is valid
for about a year, and the short-lived one refreshes automatically.

With --export-base64, the token pair is also written to
GARMINTOKENS_BASE64 as a single base64 bundle for copying to
environments without a writable token directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.HasCredentials() {
			return fmt.Errorf("GARMIN_EMAIL and GARMIN_PASSWORD environment variables must be set")
		}

		client := newClient()
		if err := client.Login(cmd.Context()); err != nil {
			return err
		}

		color.Green("✓ Logged in to Garmin Connect")
		fmt.Printf("  Tokens stored in %s\n", cfg.TokenDir)

		if loginExportBase64 {
			t1, t2 := client.Tokens()
			if err := client.TokenStore().ExportBase64(cfg.TokenBase64Path, t1, t2); err != nil {
				return fmt.Errorf("failed to export token bundle: %w", err)
			}
			fmt.Printf("  Base64 bundle written to %s\n", cfg.TokenBase64Path)
		}

		return nil
	},
}

func init() {
	loginCmd.Flags().BoolVar(&loginExportBase64, "export-base64", false, "also write a base64 token bundle")
	rootCmd.AddCommand(loginCmd)
}
