package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rickgao/coinboard/internal/model"
)

// watchBufferSize bounds each watcher channel. Notifications carry no payload,
// so dropping one while the buffer is full loses nothing a later read misses.
const watchBufferSize = 16

// Store is the process-wide state container.
type Store struct {
	logger *slog.Logger

	mu sync.RWMutex

	assets       []model.Asset
	assetIdx     map[string]int // id -> position in assets
	assetsStatus Status
	assetsErr    string
	assetQuery   string

	nfts       []model.NFTCollection
	nftIdx     map[string]int // id -> position in nfts
	nftsStatus Status
	nftsErr    string
	nftQuery   string

	darkMode bool

	watchers map[uuid.UUID]chan Change
}

// New creates an empty Store. Both lists start idle; dark mode starts on.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		logger:       logger,
		assetIdx:     make(map[string]int),
		assetsStatus: StatusIdle,
		nftIdx:       make(map[string]int),
		nftsStatus:   StatusIdle,
		darkMode:     true,
		watchers:     make(map[uuid.UUID]chan Change),
	}
}

// Watch registers a change watcher and returns its channel plus the handle
// used to unregister it.
func (s *Store) Watch() (<-chan Change, uuid.UUID) {
	ch := make(chan Change, watchBufferSize)
	id := uuid.New()

	s.mu.Lock()
	s.watchers[id] = ch
	s.mu.Unlock()

	return ch, id
}

// Unwatch removes a watcher. No-op for unknown handles.
func (s *Store) Unwatch(id uuid.UUID) {
	s.mu.Lock()
	delete(s.watchers, id)
	s.mu.Unlock()
}

// notify fans a change out to all watchers without blocking.
// Caller must hold s.mu.
func (s *Store) notify(kind ChangeKind) {
	for _, ch := range s.watchers {
		select {
		case ch <- Change{Kind: kind}:
		default:
		}
	}
}

// -----------------------------------------------------------------------------
// Load lifecycle
// -----------------------------------------------------------------------------

// LoadAssets runs the asset load lifecycle: loading -> succeeded | failed.
// Existing rows stay visible while loading; a failure keeps them and records
// the error. On success the fetched rows are copied on ingest and favorite
// flags carry over to matching ids: fetched rows never know about favorites,
// which live for the session.
func (s *Store) LoadAssets(ctx context.Context, gw Gateway) error {
	s.mu.Lock()
	s.assetsStatus = StatusLoading
	s.notify(ChangeStatus)
	s.mu.Unlock()

	assets, err := gw.FetchAssets(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.assetsStatus = StatusFailed
		s.assetsErr = err.Error()
		s.notify(ChangeStatus)
		s.logger.Error("asset load failed", "error", err)
		return err
	}

	rows := make([]model.Asset, len(assets))
	copy(rows, assets)
	for i := range rows {
		if j, ok := s.assetIdx[rows[i].ID]; ok {
			rows[i].Favorite = s.assets[j].Favorite
		}
	}

	s.assets = rows
	s.assetIdx = make(map[string]int, len(rows))
	for i := range rows {
		s.assetIdx[rows[i].ID] = i
	}
	s.assetsStatus = StatusSucceeded
	s.assetsErr = ""
	s.notify(ChangeAssets)

	s.logger.Info("assets loaded", "count", len(assets))
	return nil
}

// LoadNFTs runs the NFT load lifecycle, independent of the asset lifecycle.
func (s *Store) LoadNFTs(ctx context.Context, gw Gateway) error {
	s.mu.Lock()
	s.nftsStatus = StatusLoading
	s.notify(ChangeStatus)
	s.mu.Unlock()

	nfts, err := gw.FetchNFTCollections(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.nftsStatus = StatusFailed
		s.nftsErr = err.Error()
		s.notify(ChangeStatus)
		s.logger.Error("nft load failed", "error", err)
		return err
	}

	rows := make([]model.NFTCollection, len(nfts))
	copy(rows, nfts)
	for i := range rows {
		if j, ok := s.nftIdx[rows[i].ID]; ok {
			rows[i].Favorite = s.nfts[j].Favorite
		}
	}

	s.nfts = rows
	s.nftIdx = make(map[string]int, len(rows))
	for i := range rows {
		s.nftIdx[rows[i].ID] = i
	}
	s.nftsStatus = StatusSucceeded
	s.nftsErr = ""
	s.notify(ChangeNFTs)

	s.logger.Info("nft collections loaded", "count", len(nfts))
	return nil
}

// -----------------------------------------------------------------------------
// Mutations
// -----------------------------------------------------------------------------

// ApplyPriceUpdate overwrites price fields of the asset whose id matches the
// update's lower-cased symbol. Unknown symbols are dropped silently: the
// streaming set is a subset of the fetched set.
func (s *Store) ApplyPriceUpdate(u model.PriceUpdate) {
	id := strings.ToLower(u.Symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.assetIdx[id]
	if !ok {
		return
	}

	a := &s.assets[i]
	a.Price = u.Price
	a.Change1h = u.Change1h
	a.Change24h = u.Change24h
	a.Change7d = u.Change7d
	a.Volume24h = u.Volume24h
	if u.Price != 0 {
		a.VolumeCrypto = u.Volume24h / u.Price
	} else {
		a.VolumeCrypto = 0
	}

	s.notify(ChangePrices)
}

// ToggleFavorite flips the favorite flag of an asset. No-op for unknown ids.
func (s *Store) ToggleFavorite(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.assetIdx[id]; ok {
		s.assets[i].Favorite = !s.assets[i].Favorite
		s.notify(ChangeFavorites)
	}
}

// ToggleNFTFavorite flips the favorite flag of an NFT collection.
func (s *Store) ToggleNFTFavorite(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.nftIdx[id]; ok {
		s.nfts[i].Favorite = !s.nfts[i].Favorite
		s.notify(ChangeFavorites)
	}
}

// SetAssetQuery stores the asset search query, lower-cased at write time.
func (s *Store) SetAssetQuery(q string) {
	s.mu.Lock()
	s.assetQuery = strings.ToLower(q)
	s.notify(ChangeQuery)
	s.mu.Unlock()
}

// SetNFTQuery stores the NFT search query, lower-cased at write time.
func (s *Store) SetNFTQuery(q string) {
	s.mu.Lock()
	s.nftQuery = strings.ToLower(q)
	s.notify(ChangeQuery)
	s.mu.Unlock()
}

// ToggleDarkMode flips the theme flag.
func (s *Store) ToggleDarkMode() {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	s.notify(ChangeTheme)
	s.mu.Unlock()
}
