package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchAssets(t *testing.T) {
	payload := `[
		{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":50000,
		 "total_volume":1000000,"market_cap":900000000,
		 "price_change_percentage_24h_in_currency":1.5,
		 "sparkline_in_7d":{"price":[1,2,3,4,5,6,7,8]}},
		{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3000,
		 "total_volume":500000,"market_cap":400000000},
		{"id":"tether","symbol":"usdt","name":"Tether","current_price":1,
		 "total_volume":80000,"market_cap":80000000}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/markets" {
			t.Errorf("path = %q, want /coins/markets", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("order") != "market_cap_desc" {
			t.Errorf("order = %q, want market_cap_desc", q.Get("order"))
		}
		if q.Get("sparkline") != "true" {
			t.Errorf("sparkline = %q, want true", q.Get("sparkline"))
		}
		if q.Get("price_change_percentage") != "1h,24h,7d" {
			t.Errorf("price_change_percentage = %q", q.Get("price_change_percentage"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	assets, err := client.FetchAssets(context.Background())
	if err != nil {
		t.Fatalf("FetchAssets failed: %v", err)
	}

	if len(assets) != 3 {
		t.Fatalf("len = %d, want 3", len(assets))
	}

	// Rank is a strictly increasing sequence starting at 1, matching input order.
	for i, a := range assets {
		if a.Rank != i+1 {
			t.Errorf("assets[%d].Rank = %d, want %d", i, a.Rank, i+1)
		}
	}

	if assets[0].Symbol != "BTC" {
		t.Errorf("Symbol = %q, want BTC", assets[0].Symbol)
	}
	if assets[0].Change24h != 1.5 {
		t.Errorf("Change24h = %v, want 1.5", assets[0].Change24h)
	}
	if assets[1].Change24h != 0 {
		t.Errorf("missing Change24h = %v, want 0", assets[1].Change24h)
	}
	if len(assets[0].Chart) != 7 {
		t.Errorf("Chart len = %d, want 7", len(assets[0].Chart))
	}
	if len(assets[1].Chart) != 0 {
		t.Errorf("Chart len = %d, want 0 without sparkline", len(assets[1].Chart))
	}
}

func TestFetchNFTCollections(t *testing.T) {
	payload := `[
		{"id":"azuki","name":"Azuki","symbol":"AZUKI","thumb":"https://img/azuki.png",
		 "floor_price":{"usd":10.5},"market_cap":{"usd":100000},
		 "total_supply":10000},
		{"id":"bored-apes","name":"Bored Ape Yacht Club","symbol":"BAYC","thumb":""}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nfts/list" {
			t.Errorf("path = %q, want /nfts/list", r.URL.Path)
		}
		if got := r.URL.Query().Get("order"); got != "market_cap_usd_desc" {
			t.Errorf("order = %q, want market_cap_usd_desc", got)
		}
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	nfts, err := client.FetchNFTCollections(context.Background())
	if err != nil {
		t.Fatalf("FetchNFTCollections failed: %v", err)
	}

	if len(nfts) != 2 {
		t.Fatalf("len = %d, want 2", len(nfts))
	}
	if nfts[0].FloorPrice == nil || *nfts[0].FloorPrice != 10.5 {
		t.Errorf("FloorPrice = %v, want 10.5", nfts[0].FloorPrice)
	}
	if nfts[0].TotalSupply == nil || *nfts[0].TotalSupply != 10000 {
		t.Errorf("TotalSupply = %v, want 10000", nfts[0].TotalSupply)
	}
	if nfts[1].FloorPrice != nil || nfts[1].Volume24h != nil {
		t.Error("expected absent NFT numerics to stay nil")
	}
}

func TestFetchChartSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin/market_chart" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("days") != "7" || q.Get("interval") != "daily" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"prices":[[1718409600000,65000],[1718496000000,66100]]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	points, err := client.FetchChartSeries(context.Background(), "bitcoin", 7)
	if err != nil {
		t.Fatalf("FetchChartSeries failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("len = %d, want 2", len(points))
	}
	if points[0].Date != "2024-06-15" || points[0].Price != 65000 {
		t.Errorf("points[0] = %+v", points[0])
	}
}

func TestFetchAssetsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.FetchAssets(context.Background())
	if err == nil {
		t.Fatal("expected error for 429 response")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error %T is not *FetchError", err)
	}
	if fetchErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", fetchErr.StatusCode)
	}
}

func TestFetchAssetsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Refuse connections.

	client := NewClient(server.URL)

	_, err := client.FetchAssets(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error %T is not *FetchError", err)
	}
	if fetchErr.StatusCode != 0 || fetchErr.Err == nil {
		t.Errorf("FetchError = %+v, want transport cause", fetchErr)
	}
}
