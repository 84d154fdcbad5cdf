// Package sensormcp wires the FROST SensorThings tool set into a runnable
// service: an MCP server on stdio, optionally fronted by an HTTP gateway,
// with a SQLite response cache between the tools and the upstream API.
package sensormcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/frostlab/sensormcp/internal/cache"
	"github.com/frostlab/sensormcp/internal/config"
	"github.com/frostlab/sensormcp/internal/errortypes"
	"github.com/frostlab/sensormcp/internal/frost"
	"github.com/frostlab/sensormcp/internal/httpgate"
	"github.com/frostlab/sensormcp/internal/server"
	"github.com/frostlab/sensormcp/internal/telemetry"
)

// Config represents the configuration for the sensormcp service.
type Config = config.Config

// Server represents the sensormcp service.
type Server struct {
	config     *config.Config
	store      cache.Store // nil when the cache is disabled
	fetcher    frost.Fetcher
	metrics    *telemetry.MetricsCollector
	toolServer *server.MCPSensorToolServer
	gateway    *httpgate.Gateway
	logger     *slog.Logger
}

// ServerOptions defines the options for creating a new Server.
type ServerOptions struct {
	Config     *Config      // Pre-filled config. If nil, ConfigPath is used.
	ConfigPath string       // Path to config file. Used if Config is nil. If both are empty, DefaultConfig() is used.
	Logger     *slog.Logger // External logger. If nil, slog.Default() is used.
}

// NewServer creates a new sensormcp Server with the given options.
// If opts.Config is provided, it is used directly. Otherwise, if
// opts.ConfigPath is provided, configuration is loaded from that path.
// If neither is provided, DefaultConfig() is used.
func NewServer(opts ServerOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	var err error

	if opts.Config != nil {
		cfg = opts.Config
		logger.Info("Using provided Config object for server initialization")
	} else if opts.ConfigPath != "" {
		logger.Info("Loading configuration for server initialization", "path", opts.ConfigPath)
		cfg, err = config.LoadConfigWithPath(opts.ConfigPath)
		if err != nil {
			logger.Error("Failed to load configuration from path", "path", opts.ConfigPath, "error", err)
			return nil, errortypes.ConfigError(err, "failed to load configuration from path: "+opts.ConfigPath)
		}
	} else {
		logger.Info("No Config object or ConfigPath provided, using default configuration")
		cfg = DefaultConfig()
	}

	metrics := telemetry.NewMetricsCollector()
	store, fetcher, err := CreateComponents(cfg, metrics, logger)
	if err != nil {
		logger.Error("Failed to create components during server initialization", "error", err)
		return nil, err
	}

	logger.Info("Initializing sensor tool server component")
	toolServer := server.NewSensorToolServer(fetcher, cfg.API.BaseURL)
	if err := toolServer.Initialize(); err != nil {
		logger.Error("Failed to initialize MCP sensor tool server component", "error", err)
		if store != nil {
			store.Close()
		}
		return nil, errortypes.ConfigError(err, "failed to initialize MCP sensor tool server component")
	}

	logger.Info("sensormcp server successfully initialized")
	return &Server{
		config:     cfg,
		store:      store,
		fetcher:    fetcher,
		metrics:    metrics,
		toolServer: toolServer,
		logger:     logger,
	}, nil
}

// DefaultConfig returns the default configuration for the sensormcp service.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// CreateComponents creates the upstream client and, when enabled, the SQLite
// response cache, without creating a server instance. The returned store is
// nil when the cache is disabled.
func CreateComponents(cfg *Config, metrics *telemetry.MetricsCollector, logger *slog.Logger) (cache.Store, frost.Fetcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = telemetry.NewMetricsCollector()
	}

	logger.Info("Initializing FROST client", "base_url", cfg.API.BaseURL)
	client := frost.NewClient(frost.Options{
		BaseURL:    cfg.API.BaseURL,
		UserAgent:  cfg.API.UserAgent,
		Timeout:    cfg.Timeout(),
		MaxRetries: cfg.API.MaxRetries,
		RetryDelay: cfg.RetryDelay(),
		Metrics:    metrics,
	})

	if !cfg.Cache.Enabled {
		logger.Info("Response cache disabled, fetching upstream directly")
		return nil, client, nil
	}

	logger.Info("Initializing SQLite response cache", "path", cfg.Cache.SQLitePath, "ttl", cfg.CacheTTL())
	store := cache.NewSQLiteStore()
	if err := store.Initialize(cfg.Cache.SQLitePath); err != nil {
		logger.Error("Failed to initialize SQLite response cache", "path", cfg.Cache.SQLitePath, "error", err)
		return nil, nil, errortypes.CacheError(err, "failed to initialize SQLite response cache")
	}

	return store, cache.NewFetcher(client, store, cfg.CacheTTL(), metrics), nil
}

// Start starts the MCP server on stdio. It blocks until the client closes
// stdin.
func (s *Server) Start() error {
	s.logger.Info("Starting sensormcp service on stdio")
	return s.toolServer.Start()
}

// StartHTTP starts the HTTP gateway instead of the stdio transport. When
// addr is empty the configured listen address is used. It blocks until
// Stop is called.
func (s *Server) StartHTTP(addr string) error {
	if addr == "" {
		addr = s.config.ListenAddr()
	}
	s.logger.Info("Starting sensormcp service over HTTP", "addr", addr)
	s.gateway = httpgate.New(addr, s.toolServer, s.metrics)
	return s.gateway.ListenAndServe()
}

// Stop stops the sensormcp service, shutting down whichever transport is
// running and closing the cache store.
func (s *Server) Stop() error {
	s.logger.Info("Stopping sensormcp service")

	if s.gateway != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.gateway.Shutdown(ctx); err != nil {
			s.logger.Error("Error shutting down HTTP gateway", "error", err)
			return err
		}
	}

	if err := s.toolServer.Stop(); err != nil {
		s.logger.Error("Error stopping tool server", "error", err)
		return err
	}

	if s.store != nil {
		s.logger.Info("Closing response cache")
		if err := s.store.Close(); err != nil {
			s.logger.Error("Failed to close response cache", "error", err)
			return err
		}
	}

	s.logger.Info("sensormcp service stopped")
	return nil
}

// GetConfig returns the effective configuration.
func (s *Server) GetConfig() *Config {
	return s.config
}

// GetStore returns the cache store, or nil when the cache is disabled.
func (s *Server) GetStore() cache.Store {
	return s.store
}

// GetFetcher returns the fetcher the tools use, cached or direct.
func (s *Server) GetFetcher() frost.Fetcher {
	return s.fetcher
}

// GetMetrics returns the metrics collector shared by the components.
func (s *Server) GetMetrics() *telemetry.MetricsCollector {
	return s.metrics
}

// ToolServer returns the underlying MCP tool server.
func (s *Server) ToolServer() *server.MCPSensorToolServer {
	return s.toolServer
}
