// ABOUTME: MCP tools for women's health: menstrual cycle day view and pregnancy summary.
// ABOUTME: get_menstrual_data_for_date and get_pregnancy_summary.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerWomensHealthTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_menstrual_data_for_date",
		Description: "Get menstrual cycle tracking data for a date",
	}, s.handleGetMenstrualData)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_pregnancy_summary",
		Description: "Get the pregnancy tracking snapshot",
	}, s.handleGetPregnancySummary)
}

func (s *Server) handleGetMenstrualData(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.MenstrualDataForDate(ctx, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get menstrual data: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetPregnancySummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.PregnancySummary(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get pregnancy summary: %w", err)
	}
	return nil, raw, nil
}
