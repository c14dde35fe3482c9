// ABOUTME: MCP tools for training metrics.
// ABOUTME: Status, readiness, VO2 max, HRV, and race predictions.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTrainingTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_training_status",
		Description: "Get the aggregated training status for a date",
	}, s.handleGetTrainingStatus)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_training_readiness",
		Description: "Get the training readiness score for a date",
	}, s.handleGetTrainingReadiness)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_max_metrics",
		Description: "Get VO2 max and fitness age metrics for a date",
	}, s.handleGetMaxMetrics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_hrv_data",
		Description: "Get heart rate variability data for a date",
	}, s.handleGetHRVData)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_race_predictions",
		Description: "Get the latest predicted race times",
	}, s.handleGetRacePredictions)
}

func (s *Server) handleGetTrainingStatus(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.TrainingStatus(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get training status: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetTrainingReadiness(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.TrainingReadiness(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get training readiness: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetMaxMetrics(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.MaxMetrics(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get max metrics: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetHRVData(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.HRVData(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get HRV data: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetRacePredictions(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.RacePredictions(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get race predictions: %w", err)
	}
	return nil, raw, nil
}
