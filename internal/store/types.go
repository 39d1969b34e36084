package store

import (
	"context"

	"github.com/rickgao/coinboard/internal/model"
)

// Status is the load lifecycle of a list.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// ChangeKind identifies which slice of state a Change touched.
type ChangeKind string

const (
	ChangeAssets    ChangeKind = "assets"
	ChangeNFTs      ChangeKind = "nfts"
	ChangePrices    ChangeKind = "prices"
	ChangeFavorites ChangeKind = "favorites"
	ChangeQuery     ChangeKind = "query"
	ChangeTheme     ChangeKind = "theme"
	ChangeStatus    ChangeKind = "status"
)

// Change is a state-change notification delivered to watchers.
type Change struct {
	Kind ChangeKind
}

// Gateway is the data source the load lifecycle runs against.
type Gateway interface {
	FetchAssets(ctx context.Context) ([]model.Asset, error)
	FetchNFTCollections(ctx context.Context) ([]model.NFTCollection, error)
}
