// ABOUTME: Weight endpoints: body composition, weigh-in history, new weigh-ins.
// ABOUTME: Covers body composition, weigh-in ranges, and adding weigh-ins.
package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// BodyComposition returns body composition measurements for a date range.
func (c *Client) BodyComposition(ctx context.Context, start, end time.Time) (json.RawMessage, error) {
	q := url.Values{
		"startDate": {fmtDate(start)},
		"endDate":   {fmtDate(end)},
	}
	return c.getJSON(ctx, "/weight-service/weight/dateRange", q)
}

// WeighIns returns all weigh-ins recorded in a date range.
func (c *Client) WeighIns(ctx context.Context, start, end time.Time) (json.RawMessage, error) {
	q := url.Values{"includeAll": {"true"}}
	path := fmt.Sprintf("/weight-service/weight/range/%s/%s", fmtDate(start), fmtDate(end))
	return c.getJSON(ctx, path, q)
}

// AddWeighIn records a manual weigh-in in kilograms.
func (c *Client) AddWeighIn(ctx context.Context, weightKg float64, when time.Time) (json.RawMessage, error) {
	local := when.Format("2006-01-02T15:04:05.00")
	gmt := when.UTC().Format("2006-01-02T15:04:05.00")
	body := map[string]any{
		"dateTimestamp": local,
		"gmtTimestamp":  gmt,
		"unitKey":       "kg",
		"sourceType":    "MANUAL",
		"value":         weightKg,
	}
	return c.postJSON(ctx, "/weight-service/user-weight", body)
}
