package config

import "time"

// Config is the root configuration for the dashboard service.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Stream  StreamConfig  `yaml:"stream"`
	Refresh RefreshConfig `yaml:"refresh"`
	Server  ServerConfig  `yaml:"server"`
}

// APIConfig holds REST provider settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // Optional demo/pro key
	Timeout time.Duration `yaml:"timeout"`
}

// StreamConfig holds streaming provider settings.
type StreamConfig struct {
	URL                  string        `yaml:"url"`
	ReconnectBaseDelay   time.Duration `yaml:"reconnect_base_delay"`
	MaxReconnectAttempts int           `yaml:"max_reconnect_attempts"`
	Enabled              *bool         `yaml:"enabled"` // nil = enabled
}

// RefreshConfig holds periodic refetch settings.
type RefreshConfig struct {
	Interval time.Duration `yaml:"interval"`
	Enabled  *bool         `yaml:"enabled"` // nil = enabled
}

// ServerConfig holds the presentation-facing HTTP API settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StreamEnabled reports whether the streaming client should run.
func (c *Config) StreamEnabled() bool {
	return c.Stream.Enabled == nil || *c.Stream.Enabled
}

// RefreshEnabled reports whether the periodic refetch loop should run.
func (c *Config) RefreshEnabled() bool {
	return c.Refresh.Enabled == nil || *c.Refresh.Enabled
}
