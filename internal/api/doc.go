// Package api provides the market-data gateway: a REST client for a
// CoinGecko-compatible provider plus normalization into internal record shapes.
//
// Endpoints used:
//   - GET /coins/markets (top-50 assets, 7d sparkline, 1h/24h/7d changes)
//   - GET /coins/{id}/market_chart
//   - GET /nfts/list (top-50 collections with details)
//   - GET /nfts/{id}/market_chart
//
// The gateway never retries; load-lifecycle policy belongs to the store.
package api
