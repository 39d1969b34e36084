package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rickgao/coinboard/internal/api"
	"github.com/rickgao/coinboard/internal/config"
	"github.com/rickgao/coinboard/internal/refresh"
	"github.com/rickgao/coinboard/internal/server"
	"github.com/rickgao/coinboard/internal/store"
	"github.com/rickgao/coinboard/internal/stream"
	"github.com/rickgao/coinboard/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting dashboard service",
		"version", version.String(),
		"config", *configPath,
	)

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}

	logger.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"stream_url", cfg.Stream.URL,
		"server_addr", cfg.Server.Addr,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create gateway client
	gateway := api.NewClient(
		cfg.API.BaseURL,
		api.WithAPIKey(cfg.API.APIKey),
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger.With("component", "api")),
	)

	// Create the state store
	st := store.New(logger.With("component", "store"))

	// Initial load of both lists in parallel. Failures are recorded in the
	// store and shown by the UI; the process keeps running either way.
	var g errgroup.Group
	g.Go(func() error { return st.LoadAssets(ctx, gateway) })
	g.Go(func() error { return st.LoadNFTs(ctx, gateway) })
	if err := g.Wait(); err != nil {
		logger.Warn("initial load incomplete", "error", err)
	}

	// Start the streaming price client
	var streamState server.StreamStateFunc
	var manager *stream.Manager
	if cfg.StreamEnabled() {
		streamCfg := stream.DefaultManagerConfig()
		streamCfg.URL = cfg.Stream.URL
		streamCfg.ReconnectBaseDelay = cfg.Stream.ReconnectBaseDelay
		streamCfg.MaxReconnectAttempts = cfg.Stream.MaxReconnectAttempts

		manager = stream.NewManager(
			streamCfg,
			st.ApplyPriceUpdate,
			func(s stream.State) {
				if s == stream.StateTerminated {
					logger.Warn("live updates stopped: reconnect attempts exhausted")
				}
			},
			logger.With("component", "stream"),
		)
		if err := manager.Start(ctx); err != nil {
			logger.Error("failed to start stream manager", "error", err)
			os.Exit(1)
		}
		streamState = manager.State
	}

	// Start the periodic refresh loop
	var refresher *refresh.Refresher
	if cfg.RefreshEnabled() {
		refresher = refresh.New(
			refresh.Config{Interval: cfg.Refresh.Interval},
			gateway,
			st,
			logger.With("component", "refresh"),
		)
		if err := refresher.Start(ctx); err != nil {
			logger.Error("failed to start refresher", "error", err)
			os.Exit(1)
		}
	}

	// Start the presentation-facing HTTP API
	srv := server.New(cfg.Server.Addr, st, streamState, logger.With("component", "server"))
	srv.Start()

	// Wait for shutdown
	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Warn("http server shutdown failed", "error", err)
	}
	if refresher != nil {
		if err := refresher.Stop(shutdownCtx); err != nil {
			logger.Warn("refresher shutdown failed", "error", err)
		}
	}
	if manager != nil {
		manager.Stop()
	}

	logger.Info("dashboard service stopped")
}
