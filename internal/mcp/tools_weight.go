// ABOUTME: MCP tools for weight data: body composition, weigh-in history, new weigh-ins.
// ABOUTME: Body composition, weigh-in history, and add_weigh_in.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerWeightTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_body_composition",
		Description: "Get body composition measurements for a date range",
	}, s.handleGetBodyComposition)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weigh_ins",
		Description: "Get all weigh-ins recorded in a date range",
	}, s.handleGetWeighIns)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_weigh_in",
		Description: "Record a manual weigh-in in kilograms",
	}, s.handleAddWeighIn)
}

type addWeighInInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"Body weight in kilograms"`
	Date     string  `json:"date,omitempty" jsonschema:"Measurement date (YYYY-MM-DD), defaults to today"`
}

func (s *Server) handleGetBodyComposition(ctx context.Context, req *mcp.CallToolRequest, input dateRangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := parseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.BodyComposition(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get body composition: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetWeighIns(ctx context.Context, req *mcp.CallToolRequest, input dateRangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := parseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.WeighIns(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get weigh-ins: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleAddWeighIn(ctx context.Context, req *mcp.CallToolRequest, input addWeighInInput) (*mcp.CallToolResult, any, error) {
	if input.WeightKg <= 0 || input.WeightKg > 1000 {
		return nil, nil, fmt.Errorf("weight_kg must be between 0 and 1000, got %.2f", input.WeightKg)
	}
	when, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.AddWeighIn(ctx, input.WeightKg, when)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add weigh-in: %w", err)
	}
	return nil, raw, nil
}
