// ABOUTME: MCP tools for gear: registered gear list and per-gear stats.
// ABOUTME: Gear list and per-gear stats.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerGearTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_gear",
		Description: "List gear (shoes, bikes, ...) registered to the account",
	}, s.handleGetGear)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_gear_stats",
		Description: "Get cumulative usage stats for one piece of gear",
	}, s.handleGetGearStats)
}

type gearStatsInput struct {
	GearUUID string `json:"gear_uuid" jsonschema:"Gear UUID from get_gear"`
}

func (s *Server) handleGetGear(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.Gear(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list gear: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetGearStats(ctx context.Context, req *mcp.CallToolRequest, input gearStatsInput) (*mcp.CallToolResult, any, error) {
	if input.GearUUID == "" {
		return nil, nil, fmt.Errorf("gear_uuid is required")
	}

	raw, err := s.client.GearStats(ctx, input.GearUUID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get gear stats: %w", err)
	}
	return nil, raw, nil
}
