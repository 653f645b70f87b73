package domain

import "github.com/shopspring/decimal"

// stubRand is a Randomizer returning fixed draws.
type stubRand struct {
	f float64
	n int64
}

func (r stubRand) Float64() float64 { return r.f }

func (r stubRand) Int64N(n int64) int64 {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// approxEqual reports whether a and b agree to within 1e-9.
func approxEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(dec("0.000000001"))
}

// mapPrices is a PriceLookup backed by a map.
type mapPrices map[string]decimal.Decimal

func (m mapPrices) Price(symbol string) (decimal.Decimal, bool) {
	p, ok := m[symbol]
	return p, ok
}
