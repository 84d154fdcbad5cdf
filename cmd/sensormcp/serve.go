package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/frostlab/sensormcp"
	"github.com/frostlab/sensormcp/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over stdio (the default)",
	Long: `Serve the sensor tool set over the stdio transport. The process reads MCP
requests from stdin and writes responses to stdout, blocking until the
client closes stdin. All logging goes to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srv, err := sensormcp.NewServer(sensormcp.ServerOptions{Config: cfg})
	if err != nil {
		return err
	}

	setupSignalHandler(srv)

	// Blocks until the client closes stdin.
	return srv.Start()
}

// setupSignalHandler stops the service cleanly on SIGINT/SIGTERM so the
// cache database is closed before exit.
func setupSignalHandler(srv *sensormcp.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		lg := logger.GetDefaultLogger()
		lg.Info("Received shutdown signal, terminating gracefully...")
		if err := srv.Stop(); err != nil {
			lg.Error("Error during shutdown: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
}
