package store

import (
	"context"
	"testing"

	"github.com/rickgao/coinboard/internal/model"
)

func TestFilteredAssets(t *testing.T) {
	st := New(nil)
	st.LoadAssets(context.Background(), &fakeGateway{assets: []model.Asset{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC"},
		{ID: "ethereum", Name: "Ethereum", Symbol: "ETH"},
		{ID: "bitcoin-cash", Name: "Bitcoin Cash", Symbol: "BCH"},
	}})

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query returns all in order", "", []string{"bitcoin", "ethereum", "bitcoin-cash"}},
		{"name substring", "bit", []string{"bitcoin", "bitcoin-cash"}},
		{"symbol substring", "eth", []string{"ethereum"}},
		{"mixed case input", "BIT", []string{"bitcoin", "bitcoin-cash"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st.SetAssetQuery(tt.query)

			got := st.FilteredAssets()
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilteredNFTs(t *testing.T) {
	st := New(nil)
	st.LoadNFTs(context.Background(), &fakeGateway{nfts: []model.NFTCollection{
		{ID: "azuki", Name: "Azuki", Symbol: "AZUKI"},
		{ID: "bored-apes", Name: "Bored Ape Yacht Club", Symbol: "BAYC"},
	}})

	st.SetNFTQuery("ape")
	got := st.FilteredNFTs()
	if len(got) != 1 || got[0].ID != "bored-apes" {
		t.Errorf("got %+v, want only bored-apes", got)
	}

	st.SetNFTQuery("")
	if got := st.FilteredNFTs(); len(got) != 2 {
		t.Errorf("len = %d, want 2 for empty query", len(got))
	}
}

func TestFilteredAssetsCopyIsolation(t *testing.T) {
	st := New(nil)
	st.LoadAssets(context.Background(), &fakeGateway{assets: []model.Asset{
		{ID: "btc", Name: "Bitcoin", Symbol: "BTC", Price: 1},
	}})

	view := st.FilteredAssets()
	view[0].Price = 999

	if a, _ := st.AssetByID("btc"); a.Price != 1 {
		t.Errorf("store mutated through a projection: price = %v", a.Price)
	}
}

func TestByIDUnknown(t *testing.T) {
	st := New(nil)

	if _, ok := st.AssetByID("nope"); ok {
		t.Error("expected miss for unknown asset id")
	}
	if _, ok := st.NFTByID("nope"); ok {
		t.Error("expected miss for unknown nft id")
	}
}
