// ABOUTME: MCP tools for daily health and wellness data.
// ABOUTME: Stats, steps, heart rate, sleep, stress, body battery, respiration, SpO2, hydration.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerWellnessTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get the daily activity/wellness summary for a date",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_steps_data",
		Description: "Get intraday step data for a date",
	}, s.handleGetStepsData)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_heart_rates",
		Description: "Get the daily heart rate series for a date",
	}, s.handleGetHeartRates)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_sleep_data",
		Description: "Get sleep stages and movement for a date",
	}, s.handleGetSleepData)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stress_data",
		Description: "Get the daily stress series for a date",
	}, s.handleGetStressData)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_body_battery",
		Description: "Get body battery reports for a date range",
	}, s.handleGetBodyBattery)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_respiration_data",
		Description: "Get the daily respiration series for a date",
	}, s.handleGetRespirationData)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_spo2_data",
		Description: "Get the daily pulse-ox (SpO2) series for a date",
	}, s.handleGetSpO2Data)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_hydration_data",
		Description: "Get hydration log totals for a date",
	}, s.handleGetHydrationData)
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type dateRangeInput struct {
	StartDate string `json:"start_date" jsonschema:"Range start (YYYY-MM-DD)"`
	EndDate   string `json:"end_date" jsonschema:"Range end (YYYY-MM-DD)"`
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.UserSummary(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetStepsData(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.StepsData(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get steps data: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetHeartRates(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.HeartRates(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get heart rates: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetSleepData(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.SleepData(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sleep data: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetStressData(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.StressData(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get stress data: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetBodyBattery(ctx context.Context, req *mcp.CallToolRequest, input dateRangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := parseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.BodyBattery(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get body battery: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetRespirationData(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.RespirationData(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get respiration data: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetSpO2Data(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.SpO2Data(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get SpO2 data: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetHydrationData(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.HydrationData(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get hydration data: %w", err)
	}
	return nil, raw, nil
}
