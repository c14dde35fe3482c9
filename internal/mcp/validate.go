// ABOUTME: Argument validation shared by the tool handlers.
// ABOUTME: Rejects malformed dates, bad ranges, and out-of-range limits before any upstream call.
package mcp

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// maxLimit caps page sizes so a single tool call can't request an
// unbounded payload from the upstream service.
const maxLimit = 100

// parseDate parses a YYYY-MM-DD argument. An empty string means today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// parseDateRange parses a required start/end pair and checks ordering.
func parseDateRange(start, end string) (time.Time, time.Time, error) {
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date and end_date are required")
	}
	s, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if s.After(e) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date %s is after end_date %s", start, end)
	}
	return s, e, nil
}

// normalizeLimit applies the default, rejects negatives, and clamps to
// the maximum page size.
func normalizeLimit(limit, def int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("limit must not be negative, got %d", limit)
	case limit == 0:
		return def, nil
	case limit > maxLimit:
		return maxLimit, nil
	default:
		return limit, nil
	}
}

// requireID checks that a numeric identifier argument is positive.
func requireID(id int64, name string) error {
	if id <= 0 {
		return fmt.Errorf("%s must be a positive integer, got %d", name, id)
	}
	return nil
}
