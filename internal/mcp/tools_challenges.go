// ABOUTME: MCP tools for challenges: ad hoc, completed badge, available badge.
// ABOUTME: Ad hoc, badge, and available badge challenge listings.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerChallengeTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_adhoc_challenges",
		Description: "Get historical ad hoc challenges",
	}, s.handleGetAdhocChallenges)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_badge_challenges",
		Description: "Get completed badge challenges",
	}, s.handleGetBadgeChallenges)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_available_badge_challenges",
		Description: "Get badge challenges currently open for joining",
	}, s.handleGetAvailableBadgeChallenges)
}

type challengesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max challenges to return (default 10, max 100)"`
}

func (s *Server) handleGetAdhocChallenges(ctx context.Context, req *mcp.CallToolRequest, input challengesInput) (*mcp.CallToolResult, any, error) {
	limit, err := normalizeLimit(input.Limit, 10)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.AdhocChallenges(ctx, 1, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get ad hoc challenges: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetBadgeChallenges(ctx context.Context, req *mcp.CallToolRequest, input challengesInput) (*mcp.CallToolResult, any, error) {
	limit, err := normalizeLimit(input.Limit, 10)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.BadgeChallenges(ctx, 1, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get badge challenges: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetAvailableBadgeChallenges(ctx context.Context, req *mcp.CallToolRequest, input challengesInput) (*mcp.CallToolResult, any, error) {
	limit, err := normalizeLimit(input.Limit, 10)
	if err != nil {
		return nil, nil, err
	}

	raw, err := s.client.AvailableBadgeChallenges(ctx, 1, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get available badge challenges: %w", err)
	}
	return nil, raw, nil
}
