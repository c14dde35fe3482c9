// ABOUTME: Women's health endpoints: menstrual cycle day view and pregnancy summary.
// ABOUTME: Covers menstrual cycle day view and pregnancy snapshot.
package garmin

import (
	"context"
	"encoding/json"
	"time"
)

// MenstrualDataForDate returns cycle tracking data for one date.
func (c *Client) MenstrualDataForDate(ctx context.Context, date time.Time) (json.RawMessage, error) {
	return c.getJSON(ctx, "/periodichealth-service/menstrualcycle/dayview/"+fmtDate(date), nil)
}

// PregnancySummary returns the pregnancy tracking snapshot.
func (c *Client) PregnancySummary(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/periodichealth-service/menstrualcycle/pregnancysnapshot", nil)
}
