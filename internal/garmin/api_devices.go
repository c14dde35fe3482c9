// ABOUTME: Device endpoints: registered devices, per-device settings, alarms.
// ABOUTME: Covers registered devices, settings, last-used, and alarms.
package garmin

import (
	"context"
	"encoding/json"
	"fmt"
)

// Devices returns every device registered to the account.
func (c *Client) Devices(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/device-service/deviceregistration/devices", nil)
}

// DeviceSettings returns the settings payload for one device.
func (c *Client) DeviceSettings(ctx context.Context, deviceID int64) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/device-service/deviceservice/device-info/settings/%d", deviceID), nil)
}

// DeviceLastUsed returns which device most recently synced.
func (c *Client) DeviceLastUsed(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/device-service/deviceservice/mylastused", nil)
}

// DeviceAlarms collects the alarms configured on every registered
// device, the same aggregation the wrapped client library performs.
func (c *Client) DeviceAlarms(ctx context.Context) (json.RawMessage, error) {
	raw, err := c.Devices(ctx)
	if err != nil {
		return nil, err
	}

	var devices []struct {
		DeviceID int64 `json:"deviceId"`
	}
	if err := json.Unmarshal(raw, &devices); err != nil {
		return nil, fmt.Errorf("parse device list: %w", err)
	}

	alarms := make([]json.RawMessage, 0, len(devices))
	for _, d := range devices {
		settings, err := c.DeviceSettings(ctx, d.DeviceID)
		if err != nil {
			return nil, err
		}
		var s struct {
			Alarms []json.RawMessage `json:"alarms"`
		}
		if err := json.Unmarshal(settings, &s); err != nil {
			return nil, fmt.Errorf("parse settings for device %d: %w", d.DeviceID, err)
		}
		alarms = append(alarms, s.Alarms...)
	}

	return json.Marshal(alarms)
}
