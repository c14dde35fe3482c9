// ABOUTME: Recording stub of the Garmin client for tool handler tests.
// ABOUTME: Captures every call's method name and arguments.
package mcp

import (
	"context"
	"encoding/json"
	"time"
)

type call struct {
	method string
	args   []any
}

// fakeClient records every API call so tests can assert that each tool
// maps to exactly one upstream call with its arguments intact.
type fakeClient struct {
	calls []call
	raw   json.RawMessage
	err   error
}

func newFakeClient() *fakeClient {
	return &fakeClient{raw: json.RawMessage(`{"ok":true}`)}
}

func (f *fakeClient) record(method string, args ...any) (json.RawMessage, error) {
	f.calls = append(f.calls, call{method: method, args: args})
	return f.raw, f.err
}

func (f *fakeClient) Activities(_ context.Context, start, limit int) (json.RawMessage, error) {
	return f.record("Activities", start, limit)
}

func (f *fakeClient) Activity(_ context.Context, id int64) (json.RawMessage, error) {
	return f.record("Activity", id)
}

func (f *fakeClient) ActivitiesByDate(_ context.Context, start, end time.Time, activityType string) (json.RawMessage, error) {
	return f.record("ActivitiesByDate", start, end, activityType)
}

func (f *fakeClient) ActivitySplits(_ context.Context, id int64) (json.RawMessage, error) {
	return f.record("ActivitySplits", id)
}

func (f *fakeClient) ActivityWeather(_ context.Context, id int64) (json.RawMessage, error) {
	return f.record("ActivityWeather", id)
}

func (f *fakeClient) ActivityHRInZones(_ context.Context, id int64) (json.RawMessage, error) {
	return f.record("ActivityHRInZones", id)
}

func (f *fakeClient) LastActivity(_ context.Context) (json.RawMessage, error) {
	return f.record("LastActivity")
}

func (f *fakeClient) UserSummary(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("UserSummary", date)
}

func (f *fakeClient) StepsData(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("StepsData", date)
}

func (f *fakeClient) HeartRates(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("HeartRates", date)
}

func (f *fakeClient) SleepData(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("SleepData", date)
}

func (f *fakeClient) StressData(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("StressData", date)
}

func (f *fakeClient) BodyBattery(_ context.Context, start, end time.Time) (json.RawMessage, error) {
	return f.record("BodyBattery", start, end)
}

func (f *fakeClient) RespirationData(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("RespirationData", date)
}

func (f *fakeClient) SpO2Data(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("SpO2Data", date)
}

func (f *fakeClient) HydrationData(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("HydrationData", date)
}

func (f *fakeClient) UserProfile(_ context.Context) (json.RawMessage, error) {
	return f.record("UserProfile")
}

func (f *fakeClient) PersonalRecords(_ context.Context) (json.RawMessage, error) {
	return f.record("PersonalRecords")
}

func (f *fakeClient) EarnedBadges(_ context.Context) (json.RawMessage, error) {
	return f.record("EarnedBadges")
}

func (f *fakeClient) Devices(_ context.Context) (json.RawMessage, error) {
	return f.record("Devices")
}

func (f *fakeClient) DeviceSettings(_ context.Context, id int64) (json.RawMessage, error) {
	return f.record("DeviceSettings", id)
}

func (f *fakeClient) DeviceLastUsed(_ context.Context) (json.RawMessage, error) {
	return f.record("DeviceLastUsed")
}

func (f *fakeClient) DeviceAlarms(_ context.Context) (json.RawMessage, error) {
	return f.record("DeviceAlarms")
}

func (f *fakeClient) Gear(_ context.Context) (json.RawMessage, error) {
	return f.record("Gear")
}

func (f *fakeClient) GearStats(_ context.Context, gearUUID string) (json.RawMessage, error) {
	return f.record("GearStats", gearUUID)
}

func (f *fakeClient) BodyComposition(_ context.Context, start, end time.Time) (json.RawMessage, error) {
	return f.record("BodyComposition", start, end)
}

func (f *fakeClient) WeighIns(_ context.Context, start, end time.Time) (json.RawMessage, error) {
	return f.record("WeighIns", start, end)
}

func (f *fakeClient) AddWeighIn(_ context.Context, weightKg float64, when time.Time) (json.RawMessage, error) {
	return f.record("AddWeighIn", weightKg, when)
}

func (f *fakeClient) AdhocChallenges(_ context.Context, start, limit int) (json.RawMessage, error) {
	return f.record("AdhocChallenges", start, limit)
}

func (f *fakeClient) BadgeChallenges(_ context.Context, start, limit int) (json.RawMessage, error) {
	return f.record("BadgeChallenges", start, limit)
}

func (f *fakeClient) AvailableBadgeChallenges(_ context.Context, start, limit int) (json.RawMessage, error) {
	return f.record("AvailableBadgeChallenges", start, limit)
}

func (f *fakeClient) TrainingStatus(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("TrainingStatus", date)
}

func (f *fakeClient) TrainingReadiness(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("TrainingReadiness", date)
}

func (f *fakeClient) MaxMetrics(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("MaxMetrics", date)
}

func (f *fakeClient) HRVData(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("HRVData", date)
}

func (f *fakeClient) RacePredictions(_ context.Context) (json.RawMessage, error) {
	return f.record("RacePredictions")
}

func (f *fakeClient) Workouts(_ context.Context, start, limit int) (json.RawMessage, error) {
	return f.record("Workouts", start, limit)
}

func (f *fakeClient) Workout(_ context.Context, id int64) (json.RawMessage, error) {
	return f.record("Workout", id)
}

func (f *fakeClient) MenstrualDataForDate(_ context.Context, date time.Time) (json.RawMessage, error) {
	return f.record("MenstrualDataForDate", date)
}

func (f *fakeClient) PregnancySummary(_ context.Context) (json.RawMessage, error) {
	return f.record("PregnancySummary")
}

func (f *fakeClient) AddBloodPressure(_ context.Context, systolic, diastolic, pulse int, when time.Time, notes string) (json.RawMessage, error) {
	return f.record("AddBloodPressure", systolic, diastolic, pulse, when, notes)
}

func (f *fakeClient) AddHydrationData(_ context.Context, valueML float64, when time.Time) (json.RawMessage, error) {
	return f.record("AddHydrationData", valueML, when)
}
