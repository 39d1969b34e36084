package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadAndValidate(t *testing.T) {
	path := writeTempConfig(t, `
api:
  base_url: https://api.example.com/v3
  timeout: 10s
stream:
  url: wss://stream.example.com/
refresh:
  interval: 1m
server:
  addr: ":9090"
`)

	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate failed: %v", err)
	}

	if cfg.API.BaseURL != "https://api.example.com/v3" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.API.Timeout)
	}
	if cfg.Refresh.Interval != time.Minute {
		t.Errorf("Interval = %v, want 1m", cfg.Refresh.Interval)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, `{}`)

	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate failed: %v", err)
	}

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
	if cfg.Stream.URL != DefaultStreamURL {
		t.Errorf("Stream URL = %q, want default", cfg.Stream.URL)
	}
	if cfg.Stream.ReconnectBaseDelay != DefaultReconnectBaseDelay {
		t.Errorf("ReconnectBaseDelay = %v, want default", cfg.Stream.ReconnectBaseDelay)
	}
	if cfg.Stream.MaxReconnectAttempts != DefaultMaxReconnectAttempts {
		t.Errorf("MaxReconnectAttempts = %d, want default", cfg.Stream.MaxReconnectAttempts)
	}
	if cfg.Server.Addr != DefaultServerAddr {
		t.Errorf("Addr = %q, want default", cfg.Server.Addr)
	}
	if !cfg.StreamEnabled() || !cfg.RefreshEnabled() {
		t.Error("stream and refresh should default to enabled")
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_API_KEY", "secret-key")

	path := writeTempConfig(t, `
api:
  api_key: ${TEST_API_KEY}
`)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.API.APIKey != "secret-key" {
		t.Errorf("APIKey = %q, want expanded env value", cfg.API.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad base url scheme", func(c *Config) { c.API.BaseURL = "ftp://x" }, true},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, true},
		{"bad stream scheme", func(c *Config) { c.Stream.URL = "https://x" }, true},
		{"zero reconnect delay", func(c *Config) { c.Stream.ReconnectBaseDelay = 0 }, true},
		{"zero max attempts", func(c *Config) { c.Stream.MaxReconnectAttempts = 0 }, true},
		{"zero refresh interval", func(c *Config) { c.Refresh.Interval = 0 }, true},
		{"empty server addr", func(c *Config) { c.Server.Addr = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
