// ABOUTME: Activity endpoints: listing, detail, splits, weather, HR zones.
// ABOUTME: Covers activity listing, detail, splits, weather, and HR zones.
package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Activities returns a page of the activity feed, newest first.
func (c *Client) Activities(ctx context.Context, start, limit int) (json.RawMessage, error) {
	q := url.Values{
		"start": {strconv.Itoa(start)},
		"limit": {strconv.Itoa(limit)},
	}
	return c.getJSON(ctx, "/activitylist-service/activities/search/activities", q)
}

// Activity returns the full detail payload for one activity.
func (c *Client) Activity(ctx context.Context, activityID int64) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/activity-service/activity/%d", activityID), nil)
}

// ActivitiesByDate returns activities within [start, end], optionally
// filtered by activity type key (running, cycling, ...).
func (c *Client) ActivitiesByDate(ctx context.Context, start, end time.Time, activityType string) (json.RawMessage, error) {
	q := url.Values{
		"startDate": {fmtDate(start)},
		"endDate":   {fmtDate(end)},
		"start":     {"0"},
		"limit":     {"100"},
	}
	if activityType != "" {
		q.Set("activityType", activityType)
	}
	return c.getJSON(ctx, "/activitylist-service/activities/search/activities", q)
}

// ActivitySplits returns lap/split data for one activity.
func (c *Client) ActivitySplits(ctx context.Context, activityID int64) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/activity-service/activity/%d/splits", activityID), nil)
}

// ActivityWeather returns the weather observed during one activity.
func (c *Client) ActivityWeather(ctx context.Context, activityID int64) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/activity-service/activity/%d/weather", activityID), nil)
}

// ActivityHRInZones returns time-in-zone heart rate data for one activity.
func (c *Client) ActivityHRInZones(ctx context.Context, activityID int64) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/activity-service/activity/%d/hrTimeInZones", activityID), nil)
}

// LastActivity returns the single most recent activity.
func (c *Client) LastActivity(ctx context.Context) (json.RawMessage, error) {
	return c.Activities(ctx, 0, 1)
}
