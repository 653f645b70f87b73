package domain

import "github.com/shopspring/decimal"

// MinPrice is the floor every simulated price is clamped to.
var MinPrice = decimal.NewFromInt(1)

const (
	// maxTickMove bounds a single tick's relative move to ±2%.
	maxTickMove = 0.04
	// maxTickVolume is the exclusive upper bound of volume added per tick.
	maxTickVolume = 100_000

	minInitialVolume   = 1_000_000
	initialVolumeRange = 10_000_000
)

// Randomizer is the pseudo-random source driving the market simulation.
// *math/rand/v2.Rand satisfies it; seed it for reproducible price paths.
type Randomizer interface {
	Float64() float64
	Int64N(n int64) int64
}

// Stock holds one instrument's simulated market data.
type Stock struct {
	Symbol        string
	CompanyName   string
	CurrentPrice  decimal.Decimal
	OpenPrice     decimal.Decimal // session-open reference, never ticked
	PreviousClose decimal.Decimal // change reference, never ticked
	Volume        int64
	MarketCap     decimal.Decimal
}

// NewStock creates a stock whose open, previous close and current price
// all start at price. The starting volume is drawn from rng.
func NewStock(symbol, companyName string, price, marketCap decimal.Decimal, rng Randomizer) *Stock {
	return &Stock{
		Symbol:        symbol,
		CompanyName:   companyName,
		CurrentPrice:  price,
		OpenPrice:     price,
		PreviousClose: price,
		Volume:        minInitialVolume + rng.Int64N(initialVolumeRange),
		MarketCap:     marketCap,
	}
}

// Tick advances the stock by one simulated step: the price moves by a
// uniform relative delta in [-2%, +2%), is rounded to cents and floored
// at MinPrice, and volume grows by a uniform amount in [0, 100000).
// Rounding happens before the floor, so a single step may exceed the 2%
// bound by up to half a cent.
func (s *Stock) Tick(rng Randomizer) {
	move := decimal.NewFromFloat((rng.Float64() - 0.5) * maxTickMove)
	next := s.CurrentPrice.Add(s.CurrentPrice.Mul(move)).Round(2)
	s.CurrentPrice = decimal.Max(next, MinPrice)
	s.Volume += rng.Int64N(maxTickVolume)
}

// PriceChange returns CurrentPrice − PreviousClose.
func (s *Stock) PriceChange() decimal.Decimal {
	return s.CurrentPrice.Sub(s.PreviousClose)
}

// ChangePercent returns PriceChange as a ratio of PreviousClose (0.01 = 1%).
func (s *Stock) ChangePercent() decimal.Decimal {
	if s.PreviousClose.IsZero() {
		return decimal.Zero
	}
	return s.PriceChange().Div(s.PreviousClose)
}
