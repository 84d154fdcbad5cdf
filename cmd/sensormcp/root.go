package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frostlab/sensormcp/internal/config"
	"github.com/frostlab/sensormcp/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sensormcp",
	Short: "MCP server for the BGS FROST SensorThings API",
	Long: `sensormcp exposes the British Geological Survey FROST Server (an OGC
SensorThings API v1.1 deployment) as a set of MCP tools: sensor search,
datastream and observation queries, geographic filtering and API metadata.

Without a subcommand it serves MCP over stdio, the transport desktop
clients use. Use "serve-http" for a plain HTTP gateway instead.`,
	Example: `  sensormcp                         # Serve MCP over stdio
  sensormcp serve-http --port 8000  # Serve the tools over HTTP
  sensormcp pack init               # Write a desktop extension manifest
  sensormcp pack                    # Build the .dxt archive
  sensormcp install                 # Register with Claude Desktop`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename,
		"Path to the configuration file")

	// Hide the auto-generated completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("sensormcp %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("sensormcp %s\n", version)
}

// loadConfig loads the global configuration and applies its logging
// settings. Logs go to stderr: stdout belongs to the MCP protocol.
func loadConfig() (*config.Config, error) {
	cfg, err := config.InitGlobal(configPath)
	if err != nil {
		return nil, err
	}

	logConfig := logger.DefaultConfig()
	logConfig.Level = logger.ParseLevel(cfg.Logging.Level)
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		logConfig.Level = logger.ParseLevel(levelStr)
	}
	if cfg.Logging.Format == "json" {
		logConfig.Format = logger.JSON
	}
	logger.SetDefaultLogger(logger.New(logConfig))

	return cfg, nil
}
