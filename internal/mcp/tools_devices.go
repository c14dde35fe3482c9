// ABOUTME: MCP tools for registered devices: list, settings, last used, alarms.
// ABOUTME: Device list, settings, last used, and alarms.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerDeviceTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_devices",
		Description: "List every Garmin device registered to the account",
	}, s.handleGetDevices)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_device_settings",
		Description: "Get the settings for one device by ID",
	}, s.handleGetDeviceSettings)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_device_last_used",
		Description: "Get the device that most recently synced",
	}, s.handleGetDeviceLastUsed)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_device_alarms",
		Description: "Get alarms configured across all registered devices",
	}, s.handleGetDeviceAlarms)
}

type deviceSettingsInput struct {
	DeviceID int64 `json:"device_id" jsonschema:"Garmin device ID"`
}

func (s *Server) handleGetDevices(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.Devices(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetDeviceSettings(ctx context.Context, req *mcp.CallToolRequest, input deviceSettingsInput) (*mcp.CallToolResult, any, error) {
	if err := requireID(input.DeviceID, "device_id"); err != nil {
		return nil, nil, err
	}

	raw, err := s.client.DeviceSettings(ctx, input.DeviceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get device settings: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetDeviceLastUsed(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.DeviceLastUsed(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get last used device: %w", err)
	}
	return nil, raw, nil
}

func (s *Server) handleGetDeviceAlarms(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.DeviceAlarms(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get device alarms: %w", err)
	}
	return nil, raw, nil
}
