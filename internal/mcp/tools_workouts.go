// ABOUTME: MCP tools for saved workouts: listing and detail.
// ABOUTME: get_workouts and get_workout_by_id.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerWorkoutTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workouts",
		Description: "List saved workouts",
	}, s.handleGetWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout_by_id",
		Description: "Get one saved workout by ID",
	}, s.handleGetWorkoutByID)
}

type workoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max workouts to return (default 20, max 100)"`
}

type workoutIDInput struct {
	WorkoutID int64 `json:"workout_id" jsonschema:"Garmin workout ID"`
}

func (s *Server) handleGetWorkouts(ctx context.Context, req *mcp.CallToolRequest, input workoutsInput) (*mcp.CallToolResult, any, error) {
	limit, err := normalizeLimit(input.Limit, 20)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.Workouts(ctx, 0, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetWorkoutByID(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID(input.WorkoutID, "workout_id"); err != nil {
		return nil, nil, err
	}

	raw, err := s.client.Workout(ctx, input.WorkoutID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get workout: %w", err)
	}
	return nil, raw, nil
}
