package server

import (
	"context"
	"errors"

	"log/slog"

	"github.com/localrivet/gomcp/server"

	"github.com/frostlab/sensormcp/internal/errortypes"
	"github.com/frostlab/sensormcp/internal/frost"
	"github.com/frostlab/sensormcp/internal/tools"
)

// Common server error types
var (
	ErrServerNotInitialized = errors.New("server not initialized")
	ErrMissingDependencies  = errors.New("one or more required dependencies are nil")
)

// Upstream identity reported by get_api_info.
const (
	upstreamVersion     = "1.1"
	upstreamServerName  = "BGS FROST Server"
	upstreamDescription = "British Geological Survey Sensor Things API"
)

// MCPSensorToolServer implements the SensorToolServer interface for handling
// MCP tool calls against the FROST SensorThings API.
type MCPSensorToolServer struct {
	fetcher   frost.Fetcher
	baseURL   string
	mcpServer server.Server
}

// NewSensorToolServer creates a new MCPSensorToolServer instance. baseURL is
// only used for reporting in get_api_info; requests go through the fetcher.
func NewSensorToolServer(fetcher frost.Fetcher, baseURL string) *MCPSensorToolServer {
	return &MCPSensorToolServer{
		fetcher: fetcher,
		baseURL: baseURL,
	}
}

// Initialize initializes the server with dependencies and configurations.
func (s *MCPSensorToolServer) Initialize() error {
	slog.Info("Initializing MCP Sensor Tool Server")

	if s.fetcher == nil {
		return errortypes.ConfigError(ErrMissingDependencies, "server initialization failed")
	}

	// Create the MCP server
	srv := server.NewServer("sensormcp")

	// Register search tool and its compatibility alias
	srv = srv.Tool(tools.ToolSearch, "Search and discover sensors with text, OData and geographic filtering",
		mcpHandler(s.handleSearch))
	srv = srv.Tool(tools.ToolSearchSensors, "Alias for search - search and discover sensors with advanced filtering",
		mcpHandler(s.handleSearch))

	// Register fetch tool and its compatibility alias
	srv = srv.Tool(tools.ToolFetch, "Get comprehensive details about a specific sensor",
		mcpHandler(s.handleFetch))
	srv = srv.Tool(tools.ToolGetSensorDetails, "Alias for fetch - get comprehensive details about a specific sensor",
		mcpHandler(s.handleFetch))

	// Register entity listing tools
	srv = srv.Tool(tools.ToolGetDatastreams, "Get datastreams with filtering and search capabilities",
		mcpHandler(s.handleGetDatastreams))
	srv = srv.Tool(tools.ToolGetObservations, "Get observations with time and value filtering",
		mcpHandler(s.handleGetObservations))
	srv = srv.Tool(tools.ToolGetLocations, "Get sensor locations with geographic filtering",
		mcpHandler(s.handleGetLocations))
	srv = srv.Tool(tools.ToolGetObservedProperties, "Get all available measurement types and properties",
		mcpHandler(s.handleGetObservedProperties))
	srv = srv.Tool(tools.ToolGetSensorsHardware, "Get physical sensor hardware information",
		mcpHandler(s.handleGetSensorsHardware))
	srv = srv.Tool(tools.ToolGetFeaturesOfInterest, "Get features of interest (what is being observed)",
		mcpHandler(s.handleGetFeaturesOfInterest))

	// Register metadata tool
	srv = srv.Tool(tools.ToolGetAPIInfo, "Get upstream API capabilities and metadata",
		mcpHandler(s.handleGetAPIInfo))

	s.mcpServer = srv
	slog.Info("MCP Sensor Tool Server initialized successfully", "tool_count", 11)
	return nil
}

// mcpHandler adapts a context-based tool handler to the gomcp handler
// signature. The stdio transport has no per-request cancellation, so each
// call runs under a background context.
func mcpHandler[Req any, Resp any](h func(context.Context, Req) (Resp, error)) func(*server.Context, Req) (Resp, error) {
	return func(_ *server.Context, req Req) (Resp, error) {
		return h(context.Background(), req)
	}
}

// Start starts the MCP server on the stdio transport. It blocks until stdin
// is closed by the client.
func (s *MCPSensorToolServer) Start() error {
	if s.mcpServer == nil {
		return errortypes.ConfigError(ErrServerNotInitialized, "cannot start server")
	}

	slog.Info("Starting MCP Sensor Tool Server")

	// Start the server using stdio transport
	stdioServer := s.mcpServer.AsStdio()
	return stdioServer.Run()
}

// Stop gracefully shuts down the MCP server.
func (s *MCPSensorToolServer) Stop() error {
	slog.Info("Stopping MCP Sensor Tool Server")
	// The server will exit when stdin is closed
	return nil
}
