package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/rickgao/coinboard/internal/model"
)

// UpdateHandler receives normalized price updates.
type UpdateHandler func(model.PriceUpdate)

// StateHandler receives connection lifecycle transitions. Optional; pass nil
// to ignore them.
type StateHandler func(State)

// Manager owns the streaming connection lifecycle: connect, subscribe, parse,
// reconnect with linear backoff, terminal give-up.
type Manager struct {
	cfg      ManagerConfig
	logger   *slog.Logger
	onUpdate UpdateHandler
	onState  StateHandler

	// newClient is swapped in tests.
	newClient func(ClientConfig, *slog.Logger) Client

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stopOnce sync.Once

	mu    sync.RWMutex
	state State
}

// NewManager creates a stream Manager. onUpdate must not be nil.
func NewManager(cfg ManagerConfig, onUpdate UpdateHandler, onState StateHandler, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = DefaultSymbols
	}

	return &Manager{
		cfg:       cfg,
		logger:    logger,
		onUpdate:  onUpdate,
		onState:   onState,
		newClient: NewClient,
		state:     StateDisconnected,
	}
}

// Start begins the connection loop. It returns immediately; connection
// failures are handled by the reconnect schedule.
func (m *Manager) Start(ctx context.Context) error {
	m.ctx, m.cancel = context.WithCancel(ctx)

	m.wg.Add(1)
	go m.run()

	m.logger.Info("stream manager started",
		"url", m.cfg.URL,
		"symbols", len(m.cfg.Symbols),
	)

	return nil
}

// Stop is the cancel handle: it closes the active connection, prevents any
// pending reconnect from firing, and waits for the loop to exit. Idempotent.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		if m.cancel != nil {
			m.cancel()
		}
		m.wg.Wait()
		m.logger.Info("stream manager stopped")
	})
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()

	if m.onState != nil {
		m.onState(s)
	}
}

// run is the connection loop. One iteration per (re)connection attempt.
func (m *Manager) run() {
	defer m.wg.Done()

	clientCfg := ClientConfig{
		URL:          m.cfg.URL,
		WriteTimeout: m.cfg.WriteTimeout,
		BufferSize:   m.cfg.BufferSize,
	}

	attempt := 0

	for {
		m.setState(StateConnecting)

		client := m.newClient(clientCfg, m.logger)
		err := client.Connect(m.ctx)
		if err == nil {
			// Counter resets only on a successful open.
			attempt = 0

			if err = m.subscribe(client); err != nil {
				m.logger.Warn("subscribe failed", "error", err)
			} else {
				m.setState(StateSubscribed)
				err = m.consume(client)
			}
			client.Close()
		}

		if m.ctx.Err() != nil {
			m.setState(StateDisconnected)
			return
		}

		m.logger.Warn("stream connection lost", "error", err)

		attempt++
		if attempt > m.cfg.MaxReconnectAttempts {
			m.logger.Error("reconnect attempts exhausted",
				"attempts", m.cfg.MaxReconnectAttempts,
			)
			m.setState(StateTerminated)
			return
		}

		delay := reconnectDelay(m.cfg.ReconnectBaseDelay, attempt)
		m.setState(StateReconnectPending)
		m.logger.Info("scheduling reconnect",
			"attempt", attempt,
			"max", m.cfg.MaxReconnectAttempts,
			"delay", delay,
		)

		timer := time.NewTimer(delay)
		select {
		case <-m.ctx.Done():
			timer.Stop()
			m.setState(StateDisconnected)
			return
		case <-timer.C:
		}
	}
}

// subscribe sends the single subscription frame for the fixed symbol set.
func (m *Manager) subscribe(client Client) error {
	cmd := subscribeCommand{
		Type: "subscribe",
		Subscriptions: []subscription{
			{Name: "price", Symbols: m.cfg.Symbols},
		},
	}

	data, err := json.Marshal(cmd)
	if err != nil {
		return err
	}

	return client.Send(data)
}

// consume forwards inbound frames until the connection fails or the manager
// is cancelled.
func (m *Manager) consume(client Client) error {
	for {
		select {
		case <-m.ctx.Done():
			return m.ctx.Err()

		case err := <-client.Errors():
			return err

		case msg, ok := <-client.Messages():
			if !ok {
				return ErrConnectionClosed
			}
			m.handleFrame(msg.Data)
		}
	}
}

// handleFrame parses one inbound frame. Malformed frames are logged and
// dropped; non-price frames are dropped silently. Neither ends the connection.
func (m *Manager) handleFrame(data []byte) {
	var frame priceFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		m.logger.Warn("malformed stream frame", "error", err)
		return
	}

	if frame.Type != "price" || frame.Symbol == "" {
		return
	}

	m.onUpdate(model.PriceUpdate{
		Symbol:    frame.Symbol,
		Price:     frame.Price,
		Change1h:  frame.Change1h,
		Change24h: frame.Change24h,
		Change7d:  frame.Change7d,
		Volume24h: frame.Volume24h,
	})
}
