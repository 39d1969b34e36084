package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL              = "https://api.coingecko.com/api/v3"
	DefaultStreamURL            = "wss://stream.coingecko.com/"
	DefaultAPITimeout           = 30 * time.Second
	DefaultReconnectBaseDelay   = 1 * time.Second
	DefaultMaxReconnectAttempts = 5
	DefaultRefreshInterval      = 5 * time.Minute
	DefaultServerAddr           = ":8080"
)

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	if c.Stream.URL == "" {
		c.Stream.URL = DefaultStreamURL
	}
	if c.Stream.ReconnectBaseDelay == 0 {
		c.Stream.ReconnectBaseDelay = DefaultReconnectBaseDelay
	}
	if c.Stream.MaxReconnectAttempts == 0 {
		c.Stream.MaxReconnectAttempts = DefaultMaxReconnectAttempts
	}

	if c.Refresh.Interval == 0 {
		c.Refresh.Interval = DefaultRefreshInterval
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}
