package stream

import (
	"errors"
	"time"
)

// Errors
var (
	ErrNotConnected     = errors.New("not connected")
	ErrAlreadyClosed    = errors.New("already closed")
	ErrConnectionClosed = errors.New("connection closed")
)

// DefaultSymbols is the fixed subscription set. It is deliberately not derived
// from the fetched asset list; assets outside it never receive live updates.
var DefaultSymbols = []string{
	"BTC", "ETH", "USDT", "XRP", "BNB",
	"SOL", "ADA", "DOGE", "DOT", "MATIC",
}

// State describes the manager's connection lifecycle.
type State string

const (
	StateDisconnected     State = "disconnected"
	StateConnecting       State = "connecting"
	StateSubscribed       State = "subscribed"
	StateReconnectPending State = "reconnect_pending"
	StateTerminated       State = "terminated" // reconnect attempts exhausted
)

// TimestampedMessage wraps raw frame data with a receive timestamp.
type TimestampedMessage struct {
	Data       []byte
	ReceivedAt time.Time
}

// subscribeCommand is the single frame sent after a successful open.
type subscribeCommand struct {
	Type          string         `json:"type"`
	Subscriptions []subscription `json:"subscriptions"`
}

type subscription struct {
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
}

// priceFrame is an inbound data frame. Frames whose Type is not "price" are
// dropped without comment.
type priceFrame struct {
	Type      string  `json:"type"`
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change1h  float64 `json:"change_1h"`
	Change24h float64 `json:"change_24h"`
	Change7d  float64 `json:"change_7d"`
	Volume24h float64 `json:"volume_24h"`
}

// ClientConfig configures a WebSocket client.
type ClientConfig struct {
	URL          string        // Streaming endpoint (e.g., wss://stream.coingecko.com/)
	WriteTimeout time.Duration // Write deadline for sends
	BufferSize   int           // Message channel buffer size
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		WriteTimeout: 5 * time.Second,
		BufferSize:   256,
	}
}

// ManagerConfig configures the stream Manager.
type ManagerConfig struct {
	URL                  string        // Streaming endpoint
	Symbols              []string      // Subscription set (DefaultSymbols when empty)
	ReconnectBaseDelay   time.Duration // Linear backoff unit (attempt N waits N * base)
	MaxReconnectAttempts int           // Give up after this many consecutive failures
	WriteTimeout         time.Duration
	BufferSize           int
}

// DefaultManagerConfig returns sensible defaults.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		Symbols:              DefaultSymbols,
		ReconnectBaseDelay:   time.Second,
		MaxReconnectAttempts: 5,
		WriteTimeout:         5 * time.Second,
		BufferSize:           256,
	}
}

// reconnectDelay computes the wait before the given reconnect attempt (1-based).
func reconnectDelay(base time.Duration, attempt int) time.Duration {
	return time.Duration(attempt) * base
}
