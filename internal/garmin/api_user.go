// ABOUTME: User profile endpoints: social profile, personal records, badges.
// ABOUTME: Covers the social profile, personal records, and earned badges.
package garmin

import (
	"context"
	"encoding/json"
	"net/url"
)

// UserProfile returns the account's social profile.
func (c *Client) UserProfile(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/userprofile-service/socialProfile", nil)
}

// PersonalRecords returns the account's personal records (fastest 5k,
// longest ride, and so on).
func (c *Client) PersonalRecords(ctx context.Context) (json.RawMessage, error) {
	p, err := c.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}
	return c.getJSON(ctx, "/personalrecord-service/personalrecord/prs/"+url.PathEscape(p.DisplayName), nil)
}

// EarnedBadges returns badges the account has earned.
func (c *Client) EarnedBadges(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/badge-service/badge/earned", nil)
}
