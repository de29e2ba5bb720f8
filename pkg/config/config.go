// Package config holds the panelmock server configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the full server configuration.
type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string `yaml:"listen"`

	// APIPrefix is the path prefix every route is mounted under.
	APIPrefix string `yaml:"api_prefix"`

	// AdminSegment is the path segment separating admin routes from
	// user routes, appended to APIPrefix.
	AdminSegment string `yaml:"admin_segment"`

	// LatencyMS is the artificial delay applied to every dispatched
	// request, modeling perceived network latency for UI testing.
	LatencyMS int `yaml:"latency_ms"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures operational logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Listen:       ":4300",
		APIPrefix:    "/api/v1",
		AdminSegment: "admin",
		LatencyMS:    300,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// AdminPrefix returns the full admin route prefix, e.g. "/api/v1/admin".
func (c *Config) AdminPrefix() string {
	return c.APIPrefix + "/" + c.AdminSegment
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		return fmt.Errorf("api_prefix must start with /: %q", c.APIPrefix)
	}
	if strings.HasSuffix(c.APIPrefix, "/") {
		return fmt.Errorf("api_prefix must not end with /: %q", c.APIPrefix)
	}
	if c.AdminSegment == "" || strings.Contains(c.AdminSegment, "/") {
		return fmt.Errorf("admin_segment must be a single path segment: %q", c.AdminSegment)
	}
	if c.LatencyMS < 0 {
		return fmt.Errorf("latency_ms cannot be negative: %d", c.LatencyMS)
	}
	return nil
}

// ApplyEnv overrides fields from PANELMOCK_* environment variables.
// Unset variables leave the current value in place.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PANELMOCK_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("PANELMOCK_API_PREFIX"); v != "" {
		c.APIPrefix = v
	}
	if v := os.Getenv("PANELMOCK_ADMIN_SEGMENT"); v != "" {
		c.AdminSegment = v
	}
	if v := os.Getenv("PANELMOCK_LATENCY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PANELMOCK_LATENCY_MS: %w", err)
		}
		c.LatencyMS = ms
	}
	if v := os.Getenv("PANELMOCK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PANELMOCK_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	return nil
}
