// Package server provides the MCP server implementation for the sensormcp
// service.
package server

// SensorToolServer defines the interface for the MCP server that handles
// sensor-discovery tool calls from MCP clients.
type SensorToolServer interface {
	// Initialize initializes the server with dependencies and configurations.
	Initialize() error

	// Start starts the MCP server on the specified transport.
	Start() error

	// Stop gracefully shuts down the MCP server.
	Stop() error
}
