// ABOUTME: CLI command for a quick human-readable activity listing.
// ABOUTME: Mirrors the list_activities tool for terminal use.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var activitiesLimit int

var activitiesCmd = &cobra.Command{
	Use:     "activities",
	Aliases: []string{"acts"},
	Short:   "List recent activities",
	Long: `List recent activities from the connected Garmin account.

OUTPUT FORMAT:

  Each line shows: ID  DATE  TYPE  NAME

EXAMPLES:

  garmin-mcp activities          # Show last 5 activities
  garmin-mcp activities -n 20    # Show last 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if activitiesLimit <= 0 {
			return fmt.Errorf("limit must be positive, got %d", activitiesLimit)
		}

		client := newClient()
		if err := client.Connect(cmd.Context()); err != nil {
			return err
		}

		raw, err := client.Activities(cmd.Context(), 0, activitiesLimit)
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}

		var activities []struct {
			ActivityID   int64  `json:"activityId"`
			ActivityName string `json:"activityName"`
			StartTime    string `json:"startTimeLocal"`
			ActivityType struct {
				TypeKey string `json:"typeKey"`
			} `json:"activityType"`
		}
		if err := json.Unmarshal(raw, &activities); err != nil {
			return fmt.Errorf("failed to parse activities: %w", err)
		}

		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range activities {
			fmt.Printf("%s %s %s %s\n",
				faint.Sprintf("%d", a.ActivityID),
				faint.Sprint(a.StartTime),
				padRight(a.ActivityType.TypeKey, 16),
				a.ActivityName)
		}
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	activitiesCmd.Flags().IntVarP(&activitiesLimit, "limit", "n", 5, "max activities to show")
	rootCmd.AddCommand(activitiesCmd)
}
