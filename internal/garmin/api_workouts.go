// ABOUTME: Workout endpoints: saved workout listing and detail.
// ABOUTME: Covers workout listing and workout detail.
package garmin

import (
	"context"
	"encoding/json"
	"fmt"
)

// Workouts returns a page of saved workouts.
func (c *Client) Workouts(ctx context.Context, start, limit int) (json.RawMessage, error) {
	return c.getJSON(ctx, "/workout-service/workouts", pageQuery(start, limit))
}

// Workout returns one saved workout by ID.
func (c *Client) Workout(ctx context.Context, workoutID int64) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("/workout-service/workout/%d", workoutID), nil)
}
