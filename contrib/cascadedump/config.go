package cascadedump

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/cascadews/cascade.go"
)

// Config holds all configuration options for dump operations
type Config struct {
	// Cascade instance URL (e.g., "https://cms.example.edu")
	URL      string `env:"CASCADE_URL" env-default:"http://localhost:8080"`
	Username string `env:"CASCADE_USERNAME"`
	Password string `env:"CASCADE_PASSWORD"`
	APIKey   string `env:"CASCADE_API_KEY"`

	// Site to dump
	Site string `env:"CASCADE_DUMP_SITE"`
	// Root is the path of the folder the walk starts from
	Root string `env:"CASCADE_DUMP_ROOT" env-default:"/"`

	// Output file path
	Output string `env:"CASCADE_DUMP_OUTPUT"`
	// Base directory for dumps (prefixes output path)
	Dir string `env:"CASCADE_DUMP_DIR"`

	Timeout time.Duration `env:"CASCADE_TIMEOUT" env-default:"30s"`
	// Enable verbose logging
	Verbose bool `env:"CASCADE_DUMP_VERBOSE"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		URL:     "http://localhost:8080",
		Root:    "/",
		Timeout: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	if c.Site == "" {
		return fmt.Errorf("site is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.APIKey == "" && c.Username == "" {
		return fmt.Errorf("api key or username is required")
	}
	return nil
}

// GetOutputPath returns the full output path, applying Dir prefix if set
func (c *Config) GetOutputPath() string {
	if c.Dir != "" && c.Output != "" {
		return filepath.Join(c.Dir, c.Output)
	}
	return c.Output
}

// ServiceConfig is the client configuration for the dump.
func (c *Config) ServiceConfig() *cascade.Config {
	level := "warn"
	if c.Verbose {
		level = "debug"
	}
	return &cascade.Config{
		URL:      c.URL,
		Username: c.Username,
		Password: c.Password,
		APIKey:   c.APIKey,
		Timeout:  c.Timeout,
		LogLevel: level,
	}
}
