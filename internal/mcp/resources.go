// ABOUTME: MCP resource implementations for Garmin Connect data.
// ABOUTME: Provides garmin://profile, garmin://summary/today, and garmin://devices.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "garmin://profile",
		Name:        "User Profile",
		Description: "The account's Garmin Connect profile",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "garmin://summary/today",
		Name:        "Today's Summary",
		Description: "Today's activity and wellness summary",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "garmin://devices",
		Name:        "Registered Devices",
		Description: "Devices registered to the account",
		MIMEType:    "application/json",
	}, s.handleDevicesResource)
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	raw, err := s.client.UserProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "garmin://profile",
			MIMEType: "application/json",
			Text:     string(raw),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	raw, err := s.client.UserSummary(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's summary: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "garmin://summary/today",
			MIMEType: "application/json",
			Text:     string(raw),
		}},
	}, nil
}

func (s *Server) handleDevicesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	raw, err := s.client.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "garmin://devices",
			MIMEType: "application/json",
			Text:     string(raw),
		}},
	}, nil
}
