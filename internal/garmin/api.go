// ABOUTME: The API interface: one method per Garmin Connect endpoint.
// ABOUTME: Lets the MCP layer run against a stub in tests.
package garmin

import (
	"context"
	"encoding/json"
	"time"
)

// API is everything the tool layer needs from the client. *Client is the
// only production implementation; tests substitute a recorder.
type API interface {
	// Activities
	Activities(ctx context.Context, start, limit int) (json.RawMessage, error)
	Activity(ctx context.Context, activityID int64) (json.RawMessage, error)
	ActivitiesByDate(ctx context.Context, start, end time.Time, activityType string) (json.RawMessage, error)
	ActivitySplits(ctx context.Context, activityID int64) (json.RawMessage, error)
	ActivityWeather(ctx context.Context, activityID int64) (json.RawMessage, error)
	ActivityHRInZones(ctx context.Context, activityID int64) (json.RawMessage, error)
	LastActivity(ctx context.Context) (json.RawMessage, error)

	// Health & wellness
	UserSummary(ctx context.Context, date time.Time) (json.RawMessage, error)
	StepsData(ctx context.Context, date time.Time) (json.RawMessage, error)
	HeartRates(ctx context.Context, date time.Time) (json.RawMessage, error)
	SleepData(ctx context.Context, date time.Time) (json.RawMessage, error)
	StressData(ctx context.Context, date time.Time) (json.RawMessage, error)
	BodyBattery(ctx context.Context, start, end time.Time) (json.RawMessage, error)
	RespirationData(ctx context.Context, date time.Time) (json.RawMessage, error)
	SpO2Data(ctx context.Context, date time.Time) (json.RawMessage, error)
	HydrationData(ctx context.Context, date time.Time) (json.RawMessage, error)

	// User profile
	UserProfile(ctx context.Context) (json.RawMessage, error)
	PersonalRecords(ctx context.Context) (json.RawMessage, error)
	EarnedBadges(ctx context.Context) (json.RawMessage, error)

	// Devices
	Devices(ctx context.Context) (json.RawMessage, error)
	DeviceSettings(ctx context.Context, deviceID int64) (json.RawMessage, error)
	DeviceLastUsed(ctx context.Context) (json.RawMessage, error)
	DeviceAlarms(ctx context.Context) (json.RawMessage, error)

	// Gear
	Gear(ctx context.Context) (json.RawMessage, error)
	GearStats(ctx context.Context, gearUUID string) (json.RawMessage, error)

	// Weight
	BodyComposition(ctx context.Context, start, end time.Time) (json.RawMessage, error)
	WeighIns(ctx context.Context, start, end time.Time) (json.RawMessage, error)
	AddWeighIn(ctx context.Context, weightKg float64, when time.Time) (json.RawMessage, error)

	// Challenges
	AdhocChallenges(ctx context.Context, start, limit int) (json.RawMessage, error)
	BadgeChallenges(ctx context.Context, start, limit int) (json.RawMessage, error)
	AvailableBadgeChallenges(ctx context.Context, start, limit int) (json.RawMessage, error)

	// Training
	TrainingStatus(ctx context.Context, date time.Time) (json.RawMessage, error)
	TrainingReadiness(ctx context.Context, date time.Time) (json.RawMessage, error)
	MaxMetrics(ctx context.Context, date time.Time) (json.RawMessage, error)
	HRVData(ctx context.Context, date time.Time) (json.RawMessage, error)
	RacePredictions(ctx context.Context) (json.RawMessage, error)

	// Workouts
	Workouts(ctx context.Context, start, limit int) (json.RawMessage, error)
	Workout(ctx context.Context, workoutID int64) (json.RawMessage, error)

	// Women's health
	MenstrualDataForDate(ctx context.Context, date time.Time) (json.RawMessage, error)
	PregnancySummary(ctx context.Context) (json.RawMessage, error)

	// Data management
	AddBloodPressure(ctx context.Context, systolic, diastolic, pulse int, when time.Time, notes string) (json.RawMessage, error)
	AddHydrationData(ctx context.Context, valueML float64, when time.Time) (json.RawMessage, error)
}

var _ API = (*Client)(nil)

const dateLayout = "2006-01-02"

func fmtDate(t time.Time) string { return t.Format(dateLayout) }
