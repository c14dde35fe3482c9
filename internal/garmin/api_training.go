// ABOUTME: Training endpoints: status, readiness, VO2 max, HRV, race predictions.
// ABOUTME: Covers training status, readiness, max metrics, HRV, and race predictions.
package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// TrainingStatus returns the aggregated training status for one date.
func (c *Client) TrainingStatus(ctx context.Context, date time.Time) (json.RawMessage, error) {
	q := url.Values{"date": {fmtDate(date)}}
	return c.getJSON(ctx, "/metrics-service/metrics/trainingstatus/aggregated", q)
}

// TrainingReadiness returns the training readiness score for one date.
func (c *Client) TrainingReadiness(ctx context.Context, date time.Time) (json.RawMessage, error) {
	return c.getJSON(ctx, "/metrics-service/metrics/trainingreadiness/"+fmtDate(date), nil)
}

// MaxMetrics returns VO2 max and fitness age metrics for one date.
func (c *Client) MaxMetrics(ctx context.Context, date time.Time) (json.RawMessage, error) {
	d := fmtDate(date)
	return c.getJSON(ctx, fmt.Sprintf("/metrics-service/metrics/maxmet/daily/%s/%s", d, d), nil)
}

// HRVData returns heart rate variability data for one date.
func (c *Client) HRVData(ctx context.Context, date time.Time) (json.RawMessage, error) {
	return c.getJSON(ctx, "/hrv-service/hrv/"+fmtDate(date), nil)
}

// RacePredictions returns the latest predicted race times.
func (c *Client) RacePredictions(ctx context.Context) (json.RawMessage, error) {
	p, err := c.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}
	return c.getJSON(ctx, "/metrics-service/metrics/racepredictions/latest/"+url.PathEscape(p.DisplayName), nil)
}
