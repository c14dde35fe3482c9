// ABOUTME: Daily health and wellness endpoints.
// ABOUTME: Summary, steps, heart rate, sleep, stress, body battery, respiration, SpO2, hydration.
package garmin

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// UserSummary returns the daily stats dashboard for one calendar date.
func (c *Client) UserSummary(ctx context.Context, date time.Time) (json.RawMessage, error) {
	p, err := c.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}
	q := url.Values{"calendarDate": {fmtDate(date)}}
	return c.getJSON(ctx, "/usersummary-service/usersummary/daily/"+url.PathEscape(p.DisplayName), q)
}

// StepsData returns the intraday step chart for one calendar date.
func (c *Client) StepsData(ctx context.Context, date time.Time) (json.RawMessage, error) {
	p, err := c.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}
	q := url.Values{"date": {fmtDate(date)}}
	return c.getJSON(ctx, "/wellness-service/wellness/dailySummaryChart/"+url.PathEscape(p.DisplayName), q)
}

// HeartRates returns the daily heart rate series for one calendar date.
func (c *Client) HeartRates(ctx context.Context, date time.Time) (json.RawMessage, error) {
	p, err := c.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}
	q := url.Values{"date": {fmtDate(date)}}
	return c.getJSON(ctx, "/wellness-service/wellness/dailyHeartRate/"+url.PathEscape(p.DisplayName), q)
}

// SleepData returns sleep stages and movement for one calendar date.
func (c *Client) SleepData(ctx context.Context, date time.Time) (json.RawMessage, error) {
	p, err := c.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}
	q := url.Values{
		"date":                  {fmtDate(date)},
		"nonSleepBufferMinutes": {"60"},
	}
	return c.getJSON(ctx, "/wellness-service/wellness/dailySleepData/"+url.PathEscape(p.DisplayName), q)
}

// StressData returns the daily stress series for one calendar date.
func (c *Client) StressData(ctx context.Context, date time.Time) (json.RawMessage, error) {
	return c.getJSON(ctx, "/wellness-service/wellness/dailyStress/"+fmtDate(date), nil)
}

// BodyBattery returns body battery reports for a date range.
func (c *Client) BodyBattery(ctx context.Context, start, end time.Time) (json.RawMessage, error) {
	q := url.Values{
		"startDate": {fmtDate(start)},
		"endDate":   {fmtDate(end)},
	}
	return c.getJSON(ctx, "/wellness-service/wellness/bodyBattery/reports/daily", q)
}

// RespirationData returns the daily respiration series for one date.
func (c *Client) RespirationData(ctx context.Context, date time.Time) (json.RawMessage, error) {
	return c.getJSON(ctx, "/wellness-service/wellness/daily/respiration/"+fmtDate(date), nil)
}

// SpO2Data returns the daily pulse-ox series for one date.
func (c *Client) SpO2Data(ctx context.Context, date time.Time) (json.RawMessage, error) {
	return c.getJSON(ctx, "/wellness-service/wellness/daily/spo2/"+fmtDate(date), nil)
}

// HydrationData returns hydration log totals for one date.
func (c *Client) HydrationData(ctx context.Context, date time.Time) (json.RawMessage, error) {
	return c.getJSON(ctx, "/usersummary-service/usersummary/hydration/daily/"+fmtDate(date), nil)
}
