// ABOUTME: Challenge endpoints: ad hoc, completed badge, and available badge challenges.
// ABOUTME: Covers ad hoc and badge challenge listings.
package garmin

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

func pageQuery(start, limit int) url.Values {
	return url.Values{
		"start": {strconv.Itoa(start)},
		"limit": {strconv.Itoa(limit)},
	}
}

// AdhocChallenges returns historical ad hoc challenges.
func (c *Client) AdhocChallenges(ctx context.Context, start, limit int) (json.RawMessage, error) {
	return c.getJSON(ctx, "/adhocchallenge-service/adHocChallenge/historical", pageQuery(start, limit))
}

// BadgeChallenges returns completed badge challenges.
func (c *Client) BadgeChallenges(ctx context.Context, start, limit int) (json.RawMessage, error) {
	return c.getJSON(ctx, "/badgechallenge-service/badgeChallenge/completed", pageQuery(start, limit))
}

// AvailableBadgeChallenges returns badge challenges open for joining.
func (c *Client) AvailableBadgeChallenges(ctx context.Context, start, limit int) (json.RawMessage, error) {
	return c.getJSON(ctx, "/badgechallenge-service/badgeChallenge/available", pageQuery(start, limit))
}
