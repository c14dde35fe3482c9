// ABOUTME: MCP tools for activity data.
// ABOUTME: Listing, detail, date search, splits, weather, and HR zones.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerActivityTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_activities",
		Description: "List recent Garmin activities, newest first",
	}, s.handleListActivities)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity",
		Description: "Get full details for one activity by ID",
	}, s.handleGetActivity)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activities_by_date",
		Description: "List activities between two dates, optionally filtered by type",
	}, s.handleGetActivitiesByDate)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity_splits",
		Description: "Get lap/split data for an activity",
	}, s.handleGetActivitySplits)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity_weather",
		Description: "Get the weather recorded during an activity",
	}, s.handleGetActivityWeather)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity_hr_in_zones",
		Description: "Get time-in-zone heart rate data for an activity",
	}, s.handleGetActivityHRInZones)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_last_activity",
		Description: "Get the most recent activity",
	}, s.handleGetLastActivity)
}

type listActivitiesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max activities to return (default 5, max 100)"`
}

type activityIDInput struct {
	ActivityID int64 `json:"activity_id" jsonschema:"Garmin activity ID"`
}

type activitiesByDateInput struct {
	StartDate    string `json:"start_date" jsonschema:"Range start (YYYY-MM-DD)"`
	EndDate      string `json:"end_date" jsonschema:"Range end (YYYY-MM-DD)"`
	ActivityType string `json:"activity_type,omitempty" jsonschema:"Filter by type key (running, cycling, ...)"`
}

type emptyInput struct{}

func (s *Server) handleListActivities(ctx context.Context, req *mcp.CallToolRequest, input listActivitiesInput) (*mcp.CallToolResult, any, error) {
	limit, err := normalizeLimit(input.Limit, 5)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.Activities(ctx, 0, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetActivity(ctx context.Context, req *mcp.CallToolRequest, input activityIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID(input.ActivityID, "activity_id"); err != nil {
		return nil, nil, err
	}

	raw, err := s.client.Activity(ctx, input.ActivityID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetActivitiesByDate(ctx context.Context, req *mcp.CallToolRequest, input activitiesByDateInput) (*mcp.CallToolResult, any, error) {
	start, end, err := parseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.ActivitiesByDate(ctx, start, end, input.ActivityType)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search activities: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetActivitySplits(ctx context.Context, req *mcp.CallToolRequest, input activityIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID(input.ActivityID, "activity_id"); err != nil {
		return nil, nil, err
	}

	raw, err := s.client.ActivitySplits(ctx, input.ActivityID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get activity splits: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetActivityWeather(ctx context.Context, req *mcp.CallToolRequest, input activityIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID(input.ActivityID, "activity_id"); err != nil {
		return nil, nil, err
	}

	raw, err := s.client.ActivityWeather(ctx, input.ActivityID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get activity weather: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetActivityHRInZones(ctx context.Context, req *mcp.CallToolRequest, input activityIDInput) (*mcp.CallToolResult, any, error) {
	if err := requireID(input.ActivityID, "activity_id"); err != nil {
		return nil, nil, err
	}

	raw, err := s.client.ActivityHRInZones(ctx, input.ActivityID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get activity HR zones: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetLastActivity(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.LastActivity(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get last activity: %w", err)
	}
	return nil, raw, nil
}
