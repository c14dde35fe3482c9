// ABOUTME: MCP server setup for Garmin Connect data.
// ABOUTME: Wraps the MCP server with the authenticated Garmin client.
package mcp

import (
	"context"
	"log/slog"

	"github.com/harperreed/garmin-mcp/internal/garmin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with Garmin Connect access.
type Server struct {
	mcpServer *mcp.Server
	client    garmin.API
	log       *slog.Logger
}

// NewServer creates a new MCP server backed by the given client.
func NewServer(client garmin.API, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "garmin-connect",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		client:    client,
		log:       logger,
	}

	s.registerActivityTools()
	s.registerWellnessTools()
	s.registerUserTools()
	s.registerDeviceTools()
	s.registerGearTools()
	s.registerWeightTools()
	s.registerChallengeTools()
	s.registerTrainingTools()
	s.registerWorkoutTools()
	s.registerWomensHealthTools()
	s.registerDataTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("serving MCP over stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
