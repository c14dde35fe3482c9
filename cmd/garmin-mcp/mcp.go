// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Connects the Garmin client and serves MCP over stdio.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/garmin-mcp/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Stored tokens are loaded from
GARMINTOKENS; if none exist, GARMIN_EMAIL and GARMIN_PASSWORD are used
to log in and the resulting tokens are persisted for future runs.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "garmin": {
        "command": "garmin-mcp",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS (by area):

  Activities   list_activities, get_activity, get_activities_by_date,
               get_activity_splits, get_activity_weather,
               get_activity_hr_in_zones, get_last_activity
  Wellness     get_stats, get_steps_data, get_heart_rates, get_sleep_data,
               get_stress_data, get_body_battery, get_respiration_data,
               get_spo2_data, get_hydration_data
  Profile      get_user_profile, get_personal_records, get_earned_badges
  Devices      get_devices, get_device_settings, get_device_last_used,
               get_device_alarms
  Gear         get_gear, get_gear_stats
  Weight       get_body_composition, get_weigh_ins, add_weigh_in
  Challenges   get_adhoc_challenges, get_badge_challenges,
               get_available_badge_challenges
  Training     get_training_status, get_training_readiness,
               get_max_metrics, get_hrv_data, get_race_predictions
  Workouts     get_workouts, get_workout_by_id
  Women's      get_menstrual_data_for_date, get_pregnancy_summary
  Data entry   add_blood_pressure, add_hydration_data

AVAILABLE RESOURCES:

  garmin://profile          Account profile
  garmin://summary/today    Today's wellness summary
  garmin://devices          Registered devices`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		client := newClient()
		if err := client.Connect(ctx); err != nil {
			return err
		}

		server, err := mcp.NewServer(client, logger)
		if err != nil {
			return err
		}
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
