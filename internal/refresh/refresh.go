// Package refresh implements the periodic refetch loop.
//
// On each tick both lists are reloaded through the store's load lifecycle.
// Old rows stay visible while a refetch is in flight, and a failed refetch
// keeps the previous data.
package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rickgao/coinboard/internal/store"
)

// Config holds refresher configuration.
type Config struct {
	Interval time.Duration // Refetch interval
	Timeout  time.Duration // Per-cycle timeout (default: Interval, capped at 1m)
}

// Refresher periodically reloads the asset and NFT lists.
type Refresher struct {
	cfg    Config
	gw     store.Gateway
	st     *store.Store
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Refresher.
func New(cfg Config, gw store.Gateway, st *store.Store, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = cfg.Interval
		if cfg.Timeout > time.Minute {
			cfg.Timeout = time.Minute
		}
	}
	return &Refresher{
		cfg:    cfg,
		gw:     gw,
		st:     st,
		logger: logger,
	}
}

// Start begins the refresh loop.
func (r *Refresher) Start(ctx context.Context) error {
	r.ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.run()

	r.logger.Info("refresher started", "interval", r.cfg.Interval)
	return nil
}

// Stop gracefully shuts down the refresher.
func (r *Refresher) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("refresher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main refresh loop. The initial load happens elsewhere; the first
// refetch waits a full interval.
func (r *Refresher) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.refreshAll()
		}
	}
}

// refreshAll reloads both lists concurrently. Failures are recorded in the
// store's per-list status; the loop itself never stops on them.
func (r *Refresher) refreshAll() {
	ctx, cancel := context.WithTimeout(r.ctx, r.cfg.Timeout)
	defer cancel()

	// Plain Group: the two lifecycles are independent, so one list failing
	// must not cancel the other's fetch.
	var g errgroup.Group
	g.Go(func() error { return r.st.LoadAssets(ctx, r.gw) })
	g.Go(func() error { return r.st.LoadNFTs(ctx, r.gw) })

	if err := g.Wait(); err != nil {
		r.logger.Warn("refresh cycle had failures", "error", err)
	}
}
