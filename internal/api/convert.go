package api

import (
	"strings"
	"time"

	"github.com/rickgao/coinboard/internal/model"
)

// chartDateFormat is the calendar-day format used for chart points.
const chartDateFormat = "2006-01-02"

// chartWindow is the number of daily points kept from a sparkline.
const chartWindow = 7

// orZero dereferences an optional float, defaulting to 0.
// Assets default missing percentage changes to 0; NFTs keep them nil.
func orZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// usd extracts the dollar value from a currency-keyed field, preserving
// absence as nil.
func usd(v *USDValue) *float64 {
	if v == nil {
		return nil
	}
	return v.USD
}

// ChartFromSparkline derives a daily chart series from a sparkline: the last
// chartWindow samples (or all of them if fewer), stamped with consecutive
// calendar days ending at now, oldest first.
func ChartFromSparkline(prices []float64, now time.Time) []model.ChartPoint {
	if len(prices) == 0 {
		return nil
	}

	tail := prices
	if len(tail) > chartWindow {
		tail = tail[len(tail)-chartWindow:]
	}

	points := make([]model.ChartPoint, len(tail))
	for i, p := range tail {
		day := now.AddDate(0, 0, -(len(tail) - 1 - i))
		points[i] = model.ChartPoint{
			Date:  day.Format(chartDateFormat),
			Price: p,
		}
	}

	return points
}

// ChartFromPrices converts provider [timestamp_ms, price] pairs to chart points.
func ChartFromPrices(prices [][]float64) []model.ChartPoint {
	points := make([]model.ChartPoint, 0, len(prices))
	for _, pair := range prices {
		if len(pair) < 2 {
			continue
		}
		ts := time.UnixMilli(int64(pair[0])).UTC()
		points = append(points, model.ChartPoint{
			Date:  ts.Format(chartDateFormat),
			Price: pair[1],
		})
	}
	return points
}

// ToModel converts an APICoin to a model.Asset. Rank is the 1-based position
// of the coin in the response and is never recomputed afterwards.
func (c *APICoin) ToModel(rank int, now time.Time) model.Asset {
	var volumeCrypto float64
	if c.CurrentPrice != 0 {
		volumeCrypto = c.TotalVolume / c.CurrentPrice
	}

	var chart []model.ChartPoint
	if c.Sparkline != nil {
		chart = ChartFromSparkline(c.Sparkline.Price, now)
	}

	return model.Asset{
		ID:                c.ID,
		Rank:              rank,
		Name:              c.Name,
		Symbol:            strings.ToUpper(c.Symbol),
		LogoURL:           c.Image,
		Price:             c.CurrentPrice,
		Change1h:          orZero(c.Change1h),
		Change24h:         orZero(c.Change24h),
		Change7d:          orZero(c.Change7d),
		MarketCap:         c.MarketCap,
		Volume24h:         c.TotalVolume,
		VolumeCrypto:      volumeCrypto,
		CirculatingSupply: c.CirculatingSupply,
		MaxSupply:         c.MaxSupply,
		Chart:             chart,
	}
}

// ToModel converts an APINFT to a model.NFTCollection. Absent numeric fields
// stay nil; zero and "unknown" display differently.
func (n *APINFT) ToModel() model.NFTCollection {
	return model.NFTCollection{
		ID:              n.ID,
		Name:            n.Name,
		Symbol:          n.Symbol,
		ThumbURL:        n.Thumb,
		FloorPrice:      usd(n.FloorPrice),
		MarketCap:       usd(n.MarketCap),
		Volume24h:       usd(n.Volume24h),
		Change24h:       usd(n.Change24h),
		Change7d:        usd(n.Change7d),
		Change30d:       usd(n.Change30d),
		TotalSupply:     n.TotalSupply,
		UniqueAddresses: n.UniqueAddresses,
		OwnerCount:      n.OwnerCount,
	}
}
