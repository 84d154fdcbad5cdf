package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/frostlab/sensormcp"
)

var httpPort int

var serveHTTPCmd = &cobra.Command{
	Use:   "serve-http",
	Short: "Serve the tool set over HTTP",
	Long: `Serve the sensor tool set as a plain HTTP API for clients that do not
speak MCP. Every tool becomes POST /tools/<name>, with /health and
/openapi.json alongside.

The port is resolved in order: the --port flag, the PORT environment
variable, the configuration file, and finally the default of 8000.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("port") {
			cfg.HTTP.Port = httpPort
		} else if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return fmt.Errorf("invalid PORT environment variable %q: %w", portStr, err)
			}
			cfg.HTTP.Port = port
		}

		srv, err := sensormcp.NewServer(sensormcp.ServerOptions{Config: cfg})
		if err != nil {
			return err
		}

		setupSignalHandler(srv)

		// Blocks until shutdown. Bind failures surface immediately.
		return srv.StartHTTP("")
	},
}

func init() {
	serveHTTPCmd.Flags().IntVarP(&httpPort, "port", "p", 8000, "TCP port to listen on")
	rootCmd.AddCommand(serveHTTPCmd)
}
