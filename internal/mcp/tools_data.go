// ABOUTME: MCP tools for manual data entry: blood pressure and hydration.
// ABOUTME: add_blood_pressure and add_hydration_data with range checks.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerDataTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_blood_pressure",
		Description: "Record a manual blood pressure measurement",
	}, s.handleAddBloodPressure)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_hydration_data",
		Description: "Log water intake in milliliters",
	}, s.handleAddHydration)
}

type addBloodPressureInput struct {
	Systolic  int    `json:"systolic" jsonschema:"Systolic pressure in mmHg"`
	Diastolic int    `json:"diastolic" jsonschema:"Diastolic pressure in mmHg"`
	Pulse     int    `json:"pulse" jsonschema:"Pulse in beats per minute"`
	Date      string `json:"date,omitempty" jsonschema:"Measurement date (YYYY-MM-DD), defaults to today"`
	Notes     string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type addHydrationInput struct {
	ValueML float64 `json:"value_ml" jsonschema:"Water intake in milliliters"`
	Date    string  `json:"date,omitempty" jsonschema:"Log date (YYYY-MM-DD), defaults to today"`
}

func (s *Server) handleAddBloodPressure(ctx context.Context, req *mcp.CallToolRequest, input addBloodPressureInput) (*mcp.CallToolResult, any, error) {
	if input.Systolic < 40 || input.Systolic > 300 {
		return nil, nil, fmt.Errorf("systolic must be between 40 and 300, got %d", input.Systolic)
	}
	if input.Diastolic < 20 || input.Diastolic > 200 {
		return nil, nil, fmt.Errorf("diastolic must be between 20 and 200, got %d", input.Diastolic)
	}
	if input.Pulse < 20 || input.Pulse > 300 {
		return nil, nil, fmt.Errorf("pulse must be between 20 and 300, got %d", input.Pulse)
	}
	when, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.AddBloodPressure(ctx, input.Systolic, input.Diastolic, input.Pulse, when, input.Notes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add blood pressure: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleAddHydration(ctx context.Context, req *mcp.CallToolRequest, input addHydrationInput) (*mcp.CallToolResult, any, error) {
	if input.ValueML <= 0 || input.ValueML > 10000 {
		return nil, nil, fmt.Errorf("value_ml must be between 0 and 10000, got %.0f", input.ValueML)
	}
	when, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.AddHydrationData(ctx, input.ValueML, when)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to log hydration: %w", err)
	}
	return nil, raw, nil
}
