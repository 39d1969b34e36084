package api

// APICoin represents one entry from GET /coins/markets.
type APICoin struct {
	ID                string   `json:"id"`
	Symbol            string   `json:"symbol"`
	Name              string   `json:"name"`
	Image             string   `json:"image"`
	CurrentPrice      float64  `json:"current_price"`
	MarketCap         float64  `json:"market_cap"`
	TotalVolume       float64  `json:"total_volume"`
	CirculatingSupply float64  `json:"circulating_supply"`
	MaxSupply         *float64 `json:"max_supply"`

	// Percentage changes; the provider omits these for thin markets.
	Change1h  *float64 `json:"price_change_percentage_1h_in_currency"`
	Change24h *float64 `json:"price_change_percentage_24h_in_currency"`
	Change7d  *float64 `json:"price_change_percentage_7d_in_currency"`

	Sparkline *Sparkline `json:"sparkline_in_7d"`
}

// Sparkline is the provider's 7-day price history (hourly samples).
type Sparkline struct {
	Price []float64 `json:"price"`
}

// USDValue is a currency-keyed numeric field from the NFT endpoints.
type USDValue struct {
	USD *float64 `json:"usd"`
}

// APINFT represents one entry from GET /nfts/list.
type APINFT struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Thumb  string `json:"thumb"`

	FloorPrice *USDValue `json:"floor_price"`
	MarketCap  *USDValue `json:"market_cap"`
	Volume24h  *USDValue `json:"volume_24h"`
	Change24h  *USDValue `json:"price_change_percentage_24h"`
	Change7d   *USDValue `json:"price_change_percentage_7d"`
	Change30d  *USDValue `json:"price_change_percentage_30d"`

	TotalSupply     *int64 `json:"total_supply"`
	UniqueAddresses *int64 `json:"number_of_unique_addresses"`
	OwnerCount      *int64 `json:"number_of_owners"`
}

// MarketChartResponse from GET /coins/{id}/market_chart and
// GET /nfts/{id}/market_chart. Each entry is [timestamp_ms, price].
type MarketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}
