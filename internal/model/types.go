package model

// -----------------------------------------------------------------------------
// Market Records
// -----------------------------------------------------------------------------

// Asset represents a tracked cryptocurrency.
type Asset struct {
	ID     string `json:"id"`     // Primary key (provider slug, e.g., "bitcoin")
	Rank   int    `json:"rank"`   // 1-based market-cap rank at fetch time
	Name   string `json:"name"`   // Display name
	Symbol string `json:"symbol"` // Ticker symbol, upper-cased (e.g., "BTC")

	LogoURL string `json:"logoUrl"` // Provider-hosted logo image

	// Current prices and changes
	Price     float64 `json:"price"`     // Last price (USD)
	Change1h  float64 `json:"change1h"`  // 1h percentage change (0 when provider omits it)
	Change24h float64 `json:"change24h"` // 24h percentage change
	Change7d  float64 `json:"change7d"`  // 7d percentage change

	// Volume and supply
	MarketCap         float64  `json:"marketCap"`
	Volume24h         float64  `json:"volume24h"`    // 24h volume in USD
	VolumeCrypto      float64  `json:"volumeCrypto"` // 24h volume in base units (Volume24h / Price)
	CirculatingSupply float64  `json:"circulatingSupply"`
	MaxSupply         *float64 `json:"maxSupply"` // nil = uncapped

	Chart    []ChartPoint `json:"chart"` // Up to 7 daily points ending today
	Favorite bool         `json:"favorite"`
}

// NFTCollection represents a tracked NFT collection.
//
// Numeric fields the provider may omit are pointers: nil means "unknown" and
// must never collapse to zero.
type NFTCollection struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	ThumbURL string `json:"thumbUrl"`

	FloorPrice *float64 `json:"floorPrice"`
	MarketCap  *float64 `json:"marketCap"`
	Volume24h  *float64 `json:"volume24h"`
	Change24h  *float64 `json:"change24h"`
	Change7d   *float64 `json:"change7d"`
	Change30d  *float64 `json:"change30d"`

	TotalSupply     *int64 `json:"totalSupply"`
	UniqueAddresses *int64 `json:"uniqueAddresses"`
	OwnerCount      *int64 `json:"ownerCount"`

	Chart    []ChartPoint `json:"chart"`
	Favorite bool         `json:"favorite"`
}

// ChartPoint is a single daily sample of a price series.
type ChartPoint struct {
	Date  string  `json:"date"` // Calendar day, "2006-01-02"
	Price float64 `json:"price"`
}

// -----------------------------------------------------------------------------
// Streaming Types
// -----------------------------------------------------------------------------

// PriceUpdate is a normalized live price event from the streaming provider.
// Optional fields arrive as zero; defaulting policy belongs to the consumer.
type PriceUpdate struct {
	Symbol    string  `json:"symbol"` // Ticker symbol as sent by the provider
	Price     float64 `json:"price"`
	Change1h  float64 `json:"change1h"`
	Change24h float64 `json:"change24h"`
	Change7d  float64 `json:"change7d"`
	Volume24h float64 `json:"volume24h"`
}
