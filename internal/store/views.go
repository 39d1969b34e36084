package store

import (
	"strings"

	"github.com/rickgao/coinboard/internal/model"
)

// FilteredAssets returns assets whose name or symbol contains the current
// query, case-insensitively. An empty query returns the full list. Order is
// fetch order; sorting is a presentation concern.
func (s *Store) FilteredAssets() []model.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.assetQuery == "" {
		out := make([]model.Asset, len(s.assets))
		copy(out, s.assets)
		return out
	}

	var out []model.Asset
	for i := range s.assets {
		if matches(s.assets[i].Name, s.assets[i].Symbol, s.assetQuery) {
			out = append(out, s.assets[i])
		}
	}
	return out
}

// FilteredNFTs returns NFT collections matching the current NFT query.
func (s *Store) FilteredNFTs() []model.NFTCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.nftQuery == "" {
		out := make([]model.NFTCollection, len(s.nfts))
		copy(out, s.nfts)
		return out
	}

	var out []model.NFTCollection
	for i := range s.nfts {
		if matches(s.nfts[i].Name, s.nfts[i].Symbol, s.nftQuery) {
			out = append(out, s.nfts[i])
		}
	}
	return out
}

// matches reports whether name or symbol contains the lower-cased query.
func matches(name, symbol, query string) bool {
	return strings.Contains(strings.ToLower(name), query) ||
		strings.Contains(strings.ToLower(symbol), query)
}

// AssetByID returns the asset with the given id.
func (s *Store) AssetByID(id string) (model.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.assetIdx[id]; ok {
		return s.assets[i], true
	}
	return model.Asset{}, false
}

// NFTByID returns the NFT collection with the given id.
func (s *Store) NFTByID(id string) (model.NFTCollection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.nftIdx[id]; ok {
		return s.nfts[i], true
	}
	return model.NFTCollection{}, false
}

// AssetsStatus returns the asset list's load status and error text.
func (s *Store) AssetsStatus() (Status, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assetsStatus, s.assetsErr
}

// NFTsStatus returns the NFT list's load status and error text.
func (s *Store) NFTsStatus() (Status, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nftsStatus, s.nftsErr
}

// AssetQuery returns the current asset search query.
func (s *Store) AssetQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assetQuery
}

// NFTQuery returns the current NFT search query.
func (s *Store) NFTQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nftQuery
}

// DarkMode returns the theme flag.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}
