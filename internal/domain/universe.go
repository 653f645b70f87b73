package domain

import "github.com/shopspring/decimal"

// Listing is the static description of an instrument in the seed universe.
type Listing struct {
	Symbol      string
	CompanyName string
	Price       decimal.Decimal
	MarketCap   decimal.Decimal
}

func listing(symbol, name, price, marketCap string) Listing {
	return Listing{
		Symbol:      symbol,
		CompanyName: name,
		Price:       decimal.RequireFromString(price),
		MarketCap:   decimal.RequireFromString(marketCap),
	}
}

// SeedUniverse is the fixed set of instruments every fresh market opens with.
var SeedUniverse = []Listing{
	listing("AAPL", "Apple Inc.", "178.50", "2800000000000"),
	listing("GOOGL", "Alphabet Inc.", "140.25", "1750000000000"),
	listing("MSFT", "Microsoft Corp.", "380.75", "2850000000000"),
	listing("AMZN", "Amazon.com Inc.", "145.80", "1500000000000"),
	listing("TSLA", "Tesla Inc.", "242.50", "770000000000"),
	listing("META", "Meta Platforms", "325.60", "850000000000"),
	listing("NVDA", "NVIDIA Corp.", "485.20", "1200000000000"),
	listing("NFLX", "Netflix Inc.", "440.90", "195000000000"),
	listing("DIS", "Walt Disney Co.", "95.40", "175000000000"),
	listing("BA", "Boeing Co.", "210.30", "130000000000"),
	listing("INTC", "Intel Corp.", "45.20", "185000000000"),
	listing("AMD", "AMD Inc.", "120.75", "195000000000"),
}

// NewSeedStocks instantiates SeedUniverse, drawing starting volumes from rng.
func NewSeedStocks(rng Randomizer) []*Stock {
	stocks := make([]*Stock, len(SeedUniverse))
	for i, l := range SeedUniverse {
		stocks[i] = NewStock(l.Symbol, l.CompanyName, l.Price, l.MarketCap, rng)
	}
	return stocks
}
