// ABOUTME: Data management endpoints: manual blood pressure and hydration entries.
// ABOUTME: Covers blood pressure and hydration log writes.
package garmin

import (
	"context"
	"encoding/json"
	"time"
)

// AddBloodPressure records a manual blood pressure measurement.
func (c *Client) AddBloodPressure(ctx context.Context, systolic, diastolic, pulse int, when time.Time, notes string) (json.RawMessage, error) {
	body := map[string]any{
		"measurementTimestampLocal": when.Format("2006-01-02T15:04:05.00"),
		"measurementTimestampGMT":   when.UTC().Format("2006-01-02T15:04:05.00"),
		"systolic":                  systolic,
		"diastolic":                 diastolic,
		"pulse":                     pulse,
		"sourceType":                "MANUAL",
	}
	if notes != "" {
		body["notes"] = notes
	}
	return c.postJSON(ctx, "/bloodpressure-service/bloodpressure", body)
}

// AddHydrationData logs water intake in milliliters for a day.
func (c *Client) AddHydrationData(ctx context.Context, valueML float64, when time.Time) (json.RawMessage, error) {
	body := map[string]any{
		"calendarDate":   fmtDate(when),
		"timestampLocal": when.Format("2006-01-02T15:04:05.00"),
		"valueInML":      valueML,
	}
	return c.putJSON(ctx, "/usersummary-service/usersummary/hydration/log", body)
}
