// Command sensormcp is the FROST SensorThings MCP server. It serves the
// sensor-discovery tool set over stdio for MCP clients, or over HTTP for
// everything else, and packages itself as a desktop extension.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Environment overrides may live in a local .env file.
	_ = godotenv.Load()

	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
