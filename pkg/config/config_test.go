package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.APIPrefix != "/api/v1" {
		t.Errorf("APIPrefix = %q", cfg.APIPrefix)
	}
	if cfg.AdminSegment != "admin" {
		t.Errorf("AdminSegment = %q", cfg.AdminSegment)
	}
	if cfg.LatencyMS != 300 {
		t.Errorf("LatencyMS = %d", cfg.LatencyMS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestAdminPrefix(t *testing.T) {
	cfg := Default()
	if got := cfg.AdminPrefix(); got != "/api/v1/admin" {
		t.Errorf("AdminPrefix() = %q", got)
	}

	cfg.APIPrefix = "/v2"
	cfg.AdminSegment = "manage"
	if got := cfg.AdminPrefix(); got != "/v2/manage" {
		t.Errorf("AdminPrefix() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty listen", func(c *Config) { c.Listen = "" }, true},
		{"prefix without slash", func(c *Config) { c.APIPrefix = "api/v1" }, true},
		{"prefix trailing slash", func(c *Config) { c.APIPrefix = "/api/v1/" }, true},
		{"admin segment with slash", func(c *Config) { c.AdminSegment = "a/b" }, true},
		{"empty admin segment", func(c *Config) { c.AdminSegment = "" }, true},
		{"negative latency", func(c *Config) { c.LatencyMS = -1 }, true},
		{"zero latency", func(c *Config) { c.LatencyMS = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panelmock.yaml")
	body := "listen: \":9000\"\napi_prefix: /api/v2\nlatency_ms: 0\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.APIPrefix != "/api/v2" {
		t.Errorf("APIPrefix = %q", cfg.APIPrefix)
	}
	if cfg.LatencyMS != 0 {
		t.Errorf("LatencyMS = %d", cfg.LatencyMS)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	// Keys absent from the file keep defaults.
	if cfg.AdminSegment != "admin" {
		t.Errorf("AdminSegment = %q", cfg.AdminSegment)
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("error = %v, want ErrFileNotFound", err)
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFromFile(path)
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("error = %v, want ErrEmptyFile", err)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("listen: [unterminated"))
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("error = %v, want ErrInvalidYAML", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PANELMOCK_LISTEN", ":7777")
	t.Setenv("PANELMOCK_LATENCY_MS", "50")
	t.Setenv("PANELMOCK_LOG_FORMAT", "json")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Listen != ":7777" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.LatencyMS != 50 {
		t.Errorf("LatencyMS = %d", cfg.LatencyMS)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q", cfg.Log.Format)
	}
	// Untouched fields keep defaults.
	if cfg.APIPrefix != "/api/v1" {
		t.Errorf("APIPrefix = %q", cfg.APIPrefix)
	}
}

func TestApplyEnvBadLatency(t *testing.T) {
	t.Setenv("PANELMOCK_LATENCY_MS", "soon")
	cfg := Default()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("expected error for non-numeric latency")
	}
}
