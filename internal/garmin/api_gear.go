// ABOUTME: Gear endpoints: registered gear and per-gear usage stats.
// ABOUTME: Covers the gear list and per-gear usage stats.
package garmin

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Gear returns all gear (shoes, bikes, ...) registered to the account.
func (c *Client) Gear(ctx context.Context) (json.RawMessage, error) {
	p, err := c.ensureProfile(ctx)
	if err != nil {
		return nil, err
	}
	q := url.Values{"userProfilePk": {strconv.FormatInt(p.ProfileID, 10)}}
	return c.getJSON(ctx, "/gear-service/gear/filterGear", q)
}

// GearStats returns cumulative usage stats for one piece of gear.
func (c *Client) GearStats(ctx context.Context, gearUUID string) (json.RawMessage, error) {
	return c.getJSON(ctx, "/gear-service/gear/stats/"+url.PathEscape(gearUUID), nil)
}
