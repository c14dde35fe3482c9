// ABOUTME: MCP tools for the user profile: social profile, personal records, badges.
// ABOUTME: Profile, personal records, and earned badges.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerUserTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_user_profile",
		Description: "Get the account's Garmin Connect profile",
	}, s.handleGetUserProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Get the account's personal records",
	}, s.handleGetPersonalRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_earned_badges",
		Description: "Get badges the account has earned",
	}, s.handleGetEarnedBadges)
}

func (s *Server) handleGetUserProfile(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.UserProfile(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetPersonalRecords(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.PersonalRecords(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get personal records: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetEarnedBadges(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.EarnedBadges(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get earned badges: %w", err)
	}
	return nil, raw, nil
}
