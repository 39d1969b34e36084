package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rickgao/coinboard/internal/model"
)

// topN is the page size for the top-of-market listings.
const topN = 50

// FetchAssets fetches the top assets ordered by descending market cap,
// including 1h/24h/7d percentage changes and a 7-day sparkline.
func (c *Client) FetchAssets(ctx context.Context) ([]model.Asset, error) {
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("order", "market_cap_desc")
	query.Set("per_page", strconv.Itoa(topN))
	query.Set("page", "1")
	query.Set("sparkline", "true")
	query.Set("price_change_percentage", "1h,24h,7d")

	var coins []APICoin
	if err := c.get(ctx, "/coins/markets", query, &coins); err != nil {
		return nil, fmt.Errorf("fetch assets: %w", err)
	}

	now := time.Now()
	assets := make([]model.Asset, len(coins))
	for i := range coins {
		assets[i] = coins[i].ToModel(i+1, now)
	}

	c.logger.Debug("fetched assets", "count", len(assets))
	return assets, nil
}

// FetchNFTCollections fetches the top NFT collections ordered by descending
// market cap.
func (c *Client) FetchNFTCollections(ctx context.Context) ([]model.NFTCollection, error) {
	query := url.Values{}
	query.Set("order", "market_cap_usd_desc")
	query.Set("per_page", strconv.Itoa(topN))
	query.Set("page", "1")
	query.Set("include_nft_details", "true")

	var items []APINFT
	if err := c.get(ctx, "/nfts/list", query, &items); err != nil {
		return nil, fmt.Errorf("fetch nft collections: %w", err)
	}

	nfts := make([]model.NFTCollection, len(items))
	for i := range items {
		nfts[i] = items[i].ToModel()
	}

	c.logger.Debug("fetched nft collections", "count", len(nfts))
	return nfts, nil
}

// FetchChartSeries fetches the daily price series for a single asset.
func (c *Client) FetchChartSeries(ctx context.Context, id string, days int) ([]model.ChartPoint, error) {
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("days", strconv.Itoa(days))
	query.Set("interval", "daily")

	var resp MarketChartResponse
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/market_chart", query, &resp); err != nil {
		return nil, fmt.Errorf("fetch chart %s: %w", id, err)
	}

	return ChartFromPrices(resp.Prices), nil
}

// FetchNFTChartSeries fetches the daily floor-price series for an NFT collection.
func (c *Client) FetchNFTChartSeries(ctx context.Context, id string, days int) ([]model.ChartPoint, error) {
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("days", strconv.Itoa(days))
	query.Set("interval", "daily")

	var resp MarketChartResponse
	if err := c.get(ctx, "/nfts/"+url.PathEscape(id)+"/market_chart", query, &resp); err != nil {
		return nil, fmt.Errorf("fetch nft chart %s: %w", id, err)
	}

	return ChartFromPrices(resp.Prices), nil
}
