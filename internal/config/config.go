// Package config provides the layered configuration for the sensormcp service.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/localrivet/configurator"
)

// Global configuration instance
var (
	// Global is the global configuration instance
	Global *Config
	// initOnce ensures initialization happens only once
	initOnce sync.Once
)

// InitGlobal initializes the global configuration
func InitGlobal(configPath string) (*Config, error) {
	var err error
	initOnce.Do(func() {
		Global, err = LoadConfigWithPath(configPath)
	})
	return Global, err
}

// Config represents the sensormcp configuration
type Config struct {
	// API contains upstream FROST server configuration.
	API struct {
		// BaseURL is the root of the SensorThings API.
		BaseURL string `json:"base_url" env:"API_BASE_URL" validate:"required"`

		// UserAgent is sent with every upstream request.
		UserAgent string `json:"user_agent" env:"API_USER_AGENT"`

		// TimeoutSeconds bounds a single upstream request.
		TimeoutSeconds int `json:"timeout_seconds" env:"API_TIMEOUT_SECONDS" validate:"min:1"`

		// MaxRetries is the number of attempts for a failed upstream request.
		MaxRetries int `json:"max_retries" env:"API_MAX_RETRIES"`

		// RetryDelaySeconds is the pause between attempts.
		RetryDelaySeconds int `json:"retry_delay_seconds" env:"API_RETRY_DELAY_SECONDS"`
	} `json:"api"`

	// Cache contains response cache configuration.
	Cache struct {
		// Enabled toggles the SQLite response cache.
		Enabled bool `json:"enabled" env:"CACHE_ENABLED"`

		// SQLitePath is the path to the SQLite cache database file.
		SQLitePath string `json:"sqlite_path" env:"CACHE_SQLITE_PATH"`

		// TTLSeconds is how long a cached upstream response stays fresh.
		TTLSeconds int `json:"ttl_seconds" env:"CACHE_TTL_SECONDS"`
	} `json:"cache"`

	// HTTP contains the REST gateway configuration.
	HTTP struct {
		// Host is the bind address for the HTTP gateway.
		Host string `json:"host" env:"HTTP_HOST"`

		// Port is the TCP port for the HTTP gateway.
		Port int `json:"port" env:"HTTP_PORT" validate:"min:1"`
	} `json:"http"`

	// Logging contains logging-related configuration.
	Logging struct {
		// Level is the minimum log level to display ("debug", "info", "warn", "error").
		Level string `json:"level" env:"LOG_LEVEL" validate:"required"`

		// Format is the log format to use ("text", "json").
		Format string `json:"format" env:"LOG_FORMAT"`
	} `json:"logging"`

	// Internal state (not saved to config file)
	configPath     string       `json:"-"`
	mutex          sync.RWMutex `json:"-"`
	lastModifiedAt time.Time    `json:"-"`
}

// Default configuration values
const (
	DefaultConfigFilename  = ".sensormcpconfig"
	DefaultBaseURL         = "https://sensors.bgs.ac.uk/FROST-Server/v1.1"
	DefaultUserAgent       = "sensormcp/1.0.0"
	DefaultTimeoutSeconds  = 30
	DefaultMaxRetries      = 3
	DefaultRetrySeconds    = 2
	DefaultCachePath       = ".sensormcp-cache.db"
	DefaultCacheTTLSeconds = 300
	DefaultHTTPHost        = "0.0.0.0"
	DefaultHTTPPort        = 8000
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// NewConfig creates a new Config instance with default values
func NewConfig() *Config {
	config := &Config{}
	config.API.BaseURL = DefaultBaseURL
	config.API.UserAgent = DefaultUserAgent
	config.API.TimeoutSeconds = DefaultTimeoutSeconds
	config.API.MaxRetries = DefaultMaxRetries
	config.API.RetryDelaySeconds = DefaultRetrySeconds
	config.Cache.Enabled = true
	config.Cache.SQLitePath = DefaultCachePath
	config.Cache.TTLSeconds = DefaultCacheTTLSeconds
	config.HTTP.Host = DefaultHTTPHost
	config.HTTP.Port = DefaultHTTPPort
	config.Logging.Level = DefaultLogLevel
	config.Logging.Format = DefaultLogFormat
	return config
}

// LoadConfig loads the configuration from the default path
func LoadConfig() (*Config, error) {
	return LoadConfigWithPath(DefaultConfigFilename)
}

// LoadConfigWithPath loads the configuration from a specific path
func LoadConfigWithPath(configPath string) (*Config, error) {
	// Configuration loading logs to stderr so stdio transport stays clean.
	stdLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create default configuration
	cfg := NewConfig()

	// Try to find config file if path is default
	if configPath == DefaultConfigFilename {
		foundPath, err := configurator.FindConfigFile(configPath)
		if err == nil {
			configPath = foundPath
			stdLogger.Debug("Found config file at " + foundPath)
		}
	}

	// Check if the file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// File doesn't exist, return default config
		stdLogger.Info("Config file not found, using default configuration", "path", configPath)
		cfg.configPath = configPath
		cfg.lastModifiedAt = time.Now()
		return cfg, nil
	}

	stdLogger.Info("Loading configuration", "path", configPath)

	// Create configurator instance
	config := configurator.New(stdLogger).
		WithProvider(configurator.NewDefaultProvider()).
		WithProvider(configurator.NewFileProvider(configPath)).
		WithProvider(configurator.NewEnvProvider("SENSORMCP")).
		WithValidator(configurator.NewDefaultValidator())

	// Load configuration
	ctx := context.Background()
	if err := config.Load(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Store the config path for future operations
	cfg.configPath = configPath
	cfg.lastModifiedAt = time.Now()

	return cfg, nil
}

// Timeout returns the upstream request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// RetryDelay returns the pause between upstream attempts as a duration.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.API.RetryDelaySeconds) * time.Second
}

// CacheTTL returns the cache freshness window as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// ListenAddr returns the host:port the HTTP gateway binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// SaveToFile saves the configuration to the specified file
func (c *Config) SaveToFile(path string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Create directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Save using configurator's SaveToFile function
	if err := configurator.SaveToFile(c, path, configurator.FormatJSON); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Update internal state
	c.configPath = path
	c.lastModifiedAt = time.Now()

	return nil
}

// Save saves the configuration to the last used file path
func (c *Config) Save() error {
	if c.configPath == "" {
		c.configPath = DefaultConfigFilename
	}
	return c.SaveToFile(c.configPath)
}

// GetConfigPath returns the path of the currently loaded configuration file
func (c *Config) GetConfigPath() string {
	return c.configPath
}
