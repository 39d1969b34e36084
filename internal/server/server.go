// Package server exposes the store to the presentation layer over HTTP.
//
// Reads are projections (filtered lists, status, theme); writes are user
// intents (search text, favorite toggle, theme toggle). Sorting is UI-local
// and never happens here.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rickgao/coinboard/internal/store"
	"github.com/rickgao/coinboard/internal/stream"
)

// StreamStateFunc reports the current streaming connection state, so the UI
// can tell users when live updates have stopped.
type StreamStateFunc func() stream.State

// Server is the presentation-facing HTTP API.
type Server struct {
	st          *store.Store
	streamState StreamStateFunc
	logger      *slog.Logger

	httpServer *http.Server
}

// New creates a Server listening on addr. streamState may be nil when the
// streaming client is disabled.
func New(addr string, st *store.Store, streamState StreamStateFunc, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		st:          st,
		streamState: streamState,
		logger:      logger,
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		s.logger.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server failed", "error", err)
		}
	}()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// routes builds the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /api/assets", s.handleAssets)
	mux.HandleFunc("GET /api/nfts", s.handleNFTs)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/theme", s.handleTheme)

	mux.HandleFunc("POST /api/assets/search", s.handleAssetSearch)
	mux.HandleFunc("POST /api/nfts/search", s.handleNFTSearch)
	mux.HandleFunc("POST /api/assets/{id}/favorite", s.handleAssetFavorite)
	mux.HandleFunc("POST /api/nfts/{id}/favorite", s.handleNFTFavorite)
	mux.HandleFunc("POST /api/theme/toggle", s.handleThemeToggle)

	return mux
}
