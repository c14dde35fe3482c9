// ABOUTME: Tests for the MCP tool handlers.
// ABOUTME: Each tool forwards exactly one upstream call; bad arguments never reach the client.
package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	aug1 = time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	aug7 = time.Date(2026, 8, 7, 0, 0, 0, 0, time.Local)
)

// invoke runs one handler against a fresh fake client and returns the
// fake, the handler output, and the handler error.
func invoke(t *testing.T, fn func(s *Server) (any, error)) (*fakeClient, any, error) {
	t.Helper()
	fc := newFakeClient()
	s, err := NewServer(fc, nil)
	require.NoError(t, err)
	out, err := fn(s)
	return fc, out, err
}

func TestToolsForwardExactlyOneCall(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name       string
		call       func(s *Server) (any, error)
		wantMethod string
		wantArgs   []any
	}{
		{
			name: "list_activities",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleListActivities(ctx, req, listActivitiesInput{Limit: 7})
				return out, err
			},
			wantMethod: "Activities",
			wantArgs:   []any{0, 7},
		},
		{
			name: "list_activities default limit",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleListActivities(ctx, req, listActivitiesInput{})
				return out, err
			},
			wantMethod: "Activities",
			wantArgs:   []any{0, 5},
		},
		{
			name: "get_activity",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetActivity(ctx, req, activityIDInput{ActivityID: 12345})
				return out, err
			},
			wantMethod: "Activity",
			wantArgs:   []any{int64(12345)},
		},
		{
			name: "get_activities_by_date",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetActivitiesByDate(ctx, req, activitiesByDateInput{
					StartDate: "2026-08-01", EndDate: "2026-08-07", ActivityType: "running",
				})
				return out, err
			},
			wantMethod: "ActivitiesByDate",
			wantArgs:   []any{aug1, aug7, "running"},
		},
		{
			name: "get_activity_splits",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetActivitySplits(ctx, req, activityIDInput{ActivityID: 9})
				return out, err
			},
			wantMethod: "ActivitySplits",
			wantArgs:   []any{int64(9)},
		},
		{
			name: "get_activity_weather",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetActivityWeather(ctx, req, activityIDInput{ActivityID: 9})
				return out, err
			},
			wantMethod: "ActivityWeather",
			wantArgs:   []any{int64(9)},
		},
		{
			name: "get_activity_hr_in_zones",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetActivityHRInZones(ctx, req, activityIDInput{ActivityID: 9})
				return out, err
			},
			wantMethod: "ActivityHRInZones",
			wantArgs:   []any{int64(9)},
		},
		{
			name: "get_last_activity",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetLastActivity(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "LastActivity",
			wantArgs:   []any{},
		},
		{
			name: "get_stats",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetStats(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "UserSummary",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_steps_data",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetStepsData(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "StepsData",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_heart_rates",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetHeartRates(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "HeartRates",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_sleep_data",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetSleepData(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "SleepData",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_stress_data",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetStressData(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "StressData",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_body_battery",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetBodyBattery(ctx, req, dateRangeInput{
					StartDate: "2026-08-01", EndDate: "2026-08-07",
				})
				return out, err
			},
			wantMethod: "BodyBattery",
			wantArgs:   []any{aug1, aug7},
		},
		{
			name: "get_respiration_data",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetRespirationData(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "RespirationData",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_spo2_data",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetSpO2Data(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "SpO2Data",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_hydration_data",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetHydrationData(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "HydrationData",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_user_profile",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetUserProfile(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "UserProfile",
			wantArgs:   []any{},
		},
		{
			name: "get_personal_records",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetPersonalRecords(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "PersonalRecords",
			wantArgs:   []any{},
		},
		{
			name: "get_earned_badges",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetEarnedBadges(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "EarnedBadges",
			wantArgs:   []any{},
		},
		{
			name: "get_devices",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetDevices(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "Devices",
			wantArgs:   []any{},
		},
		{
			name: "get_device_settings",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetDeviceSettings(ctx, req, deviceSettingsInput{DeviceID: 777})
				return out, err
			},
			wantMethod: "DeviceSettings",
			wantArgs:   []any{int64(777)},
		},
		{
			name: "get_device_last_used",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetDeviceLastUsed(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "DeviceLastUsed",
			wantArgs:   []any{},
		},
		{
			name: "get_device_alarms",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetDeviceAlarms(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "DeviceAlarms",
			wantArgs:   []any{},
		},
		{
			name: "get_gear",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetGear(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "Gear",
			wantArgs:   []any{},
		},
		{
			name: "get_gear_stats",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetGearStats(ctx, req, gearStatsInput{GearUUID: "abc-123"})
				return out, err
			},
			wantMethod: "GearStats",
			wantArgs:   []any{"abc-123"},
		},
		{
			name: "get_body_composition",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetBodyComposition(ctx, req, dateRangeInput{
					StartDate: "2026-08-01", EndDate: "2026-08-07",
				})
				return out, err
			},
			wantMethod: "BodyComposition",
			wantArgs:   []any{aug1, aug7},
		},
		{
			name: "get_weigh_ins",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetWeighIns(ctx, req, dateRangeInput{
					StartDate: "2026-08-01", EndDate: "2026-08-07",
				})
				return out, err
			},
			wantMethod: "WeighIns",
			wantArgs:   []any{aug1, aug7},
		},
		{
			name: "add_weigh_in",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleAddWeighIn(ctx, req, addWeighInInput{WeightKg: 82.5, Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "AddWeighIn",
			wantArgs:   []any{82.5, aug1},
		},
		{
			name: "get_adhoc_challenges",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetAdhocChallenges(ctx, req, challengesInput{Limit: 3})
				return out, err
			},
			wantMethod: "AdhocChallenges",
			wantArgs:   []any{1, 3},
		},
		{
			name: "get_badge_challenges",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetBadgeChallenges(ctx, req, challengesInput{Limit: 3})
				return out, err
			},
			wantMethod: "BadgeChallenges",
			wantArgs:   []any{1, 3},
		},
		{
			name: "get_available_badge_challenges",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetAvailableBadgeChallenges(ctx, req, challengesInput{Limit: 3})
				return out, err
			},
			wantMethod: "AvailableBadgeChallenges",
			wantArgs:   []any{1, 3},
		},
		{
			name: "get_training_status",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetTrainingStatus(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "TrainingStatus",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_training_readiness",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetTrainingReadiness(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "TrainingReadiness",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_max_metrics",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetMaxMetrics(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "MaxMetrics",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_hrv_data",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetHRVData(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "HRVData",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_race_predictions",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetRacePredictions(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "RacePredictions",
			wantArgs:   []any{},
		},
		{
			name: "get_workouts",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetWorkouts(ctx, req, workoutsInput{Limit: 4})
				return out, err
			},
			wantMethod: "Workouts",
			wantArgs:   []any{0, 4},
		},
		{
			name: "get_workout_by_id",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetWorkoutByID(ctx, req, workoutIDInput{WorkoutID: 55})
				return out, err
			},
			wantMethod: "Workout",
			wantArgs:   []any{int64(55)},
		},
		{
			name: "get_menstrual_data_for_date",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetMenstrualData(ctx, req, dateInput{Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "MenstrualDataForDate",
			wantArgs:   []any{aug1},
		},
		{
			name: "get_pregnancy_summary",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleGetPregnancySummary(ctx, req, emptyInput{})
				return out, err
			},
			wantMethod: "PregnancySummary",
			wantArgs:   []any{},
		},
		{
			name: "add_blood_pressure",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleAddBloodPressure(ctx, req, addBloodPressureInput{
					Systolic: 120, Diastolic: 80, Pulse: 60, Date: "2026-08-01", Notes: "morning",
				})
				return out, err
			},
			wantMethod: "AddBloodPressure",
			wantArgs:   []any{120, 80, 60, aug1, "morning"},
		},
		{
			name: "add_hydration_data",
			call: func(s *Server) (any, error) {
				_, out, err := s.handleAddHydration(ctx, req, addHydrationInput{ValueML: 500, Date: "2026-08-01"})
				return out, err
			},
			wantMethod: "AddHydrationData",
			wantArgs:   []any{500.0, aug1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc, out, err := invoke(t, tt.call)
			require.NoError(t, err)

			require.Len(t, fc.calls, 1, "want exactly one upstream call")
			assert.Equal(t, tt.wantMethod, fc.calls[0].method)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, fc.calls[0].args)
			} else {
				assert.Equal(t, tt.wantArgs, fc.calls[0].args)
			}

			// The payload passes through unchanged.
			assert.Equal(t, fc.raw, out)
		})
	}
}

func TestInvalidArgumentsNeverReachUpstream(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name string
		call func(s *Server) error
	}{
		{
			name: "negative limit",
			call: func(s *Server) error {
				_, _, err := s.handleListActivities(ctx, req, listActivitiesInput{Limit: -1})
				return err
			},
		},
		{
			name: "zero activity id",
			call: func(s *Server) error {
				_, _, err := s.handleGetActivity(ctx, req, activityIDInput{})
				return err
			},
		},
		{
			name: "negative device id",
			call: func(s *Server) error {
				_, _, err := s.handleGetDeviceSettings(ctx, req, deviceSettingsInput{DeviceID: -3})
				return err
			},
		},
		{
			name: "malformed date",
			call: func(s *Server) error {
				_, _, err := s.handleGetStats(ctx, req, dateInput{Date: "01/08/2026"})
				return err
			},
		},
		{
			name: "reversed date range",
			call: func(s *Server) error {
				_, _, err := s.handleGetBodyBattery(ctx, req, dateRangeInput{
					StartDate: "2026-08-07", EndDate: "2026-08-01",
				})
				return err
			},
		},
		{
			name: "missing date range",
			call: func(s *Server) error {
				_, _, err := s.handleGetWeighIns(ctx, req, dateRangeInput{})
				return err
			},
		},
		{
			name: "empty gear uuid",
			call: func(s *Server) error {
				_, _, err := s.handleGetGearStats(ctx, req, gearStatsInput{})
				return err
			},
		},
		{
			name: "non-positive weight",
			call: func(s *Server) error {
				_, _, err := s.handleAddWeighIn(ctx, req, addWeighInInput{WeightKg: 0})
				return err
			},
		},
		{
			name: "systolic out of range",
			call: func(s *Server) error {
				_, _, err := s.handleAddBloodPressure(ctx, req, addBloodPressureInput{
					Systolic: 400, Diastolic: 80, Pulse: 60,
				})
				return err
			},
		},
		{
			name: "negative hydration",
			call: func(s *Server) error {
				_, _, err := s.handleAddHydration(ctx, req, addHydrationInput{ValueML: -100})
				return err
			},
		},
		{
			name: "zero workout id",
			call: func(s *Server) error {
				_, _, err := s.handleGetWorkoutByID(ctx, req, workoutIDInput{})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFakeClient()
			s, err := NewServer(fc, nil)
			require.NoError(t, err)

			require.Error(t, tt.call(s))
			assert.Empty(t, fc.calls, "invalid arguments must be rejected before any upstream call")
		})
	}
}

func TestUpstreamErrorPropagates(t *testing.T) {
	fc := newFakeClient()
	fc.err = errors.New("service unavailable")
	s, err := NewServer(fc, nil)
	require.NoError(t, err)

	_, _, err = s.handleGetDevices(context.Background(), &mcp.CallToolRequest{}, emptyInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service unavailable")
}
