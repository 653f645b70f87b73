package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// PriceLookup resolves the current market price of a symbol.
type PriceLookup interface {
	Price(symbol string) (decimal.Decimal, bool)
}

// Portfolio maps symbols to holdings. A holding whose share count reaches
// zero is removed, so every holding present has Shares > 0.
type Portfolio struct {
	holdings map[string]*Holding
}

// NewPortfolio creates an empty Portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		holdings: make(map[string]*Holding),
	}
}

// AddHolding records a purchase, creating the holding on the first buy of
// a symbol and averaging into it on subsequent buys.
func (p *Portfolio) AddHolding(symbol string, shares int64, price decimal.Decimal) error {
	if h, ok := p.holdings[symbol]; ok {
		return h.AddShares(shares, price)
	}
	h := &Holding{Symbol: symbol}
	if err := h.AddShares(shares, price); err != nil {
		return err
	}
	p.holdings[symbol] = h
	return nil
}

// RemoveHolding sells shares out of a holding, deleting it once empty.
// It returns ErrHoldingNotFound or ErrInsufficientHoldings without
// touching the portfolio when the sale can't be covered.
func (p *Portfolio) RemoveHolding(symbol string, shares int64) error {
	h, ok := p.holdings[symbol]
	if !ok {
		return ErrHoldingNotFound
	}
	if err := h.RemoveShares(shares); err != nil {
		return err
	}
	if h.Shares == 0 {
		delete(p.holdings, symbol)
	}
	return nil
}

// Shares returns the number of shares held for symbol, or 0.
func (p *Portfolio) Shares(symbol string) int64 {
	h, ok := p.holdings[symbol]
	if !ok {
		return 0
	}
	return h.Shares
}

// Holding returns a copy of the holding for symbol.
func (p *Portfolio) Holding(symbol string) (Holding, bool) {
	h, ok := p.holdings[symbol]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Holdings returns copies of all holdings ordered by symbol.
func (p *Portfolio) Holdings() []Holding {
	out := make([]Holding, 0, len(p.holdings))
	for _, h := range p.holdings {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Len returns the number of distinct symbols held.
func (p *Portfolio) Len() int {
	return len(p.holdings)
}

// TotalCostBasis returns the sum of every holding's cost basis.
func (p *Portfolio) TotalCostBasis() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.holdings {
		total = total.Add(h.CostBasis())
	}
	return total
}

// TotalValue returns Σ shares × current price. A held symbol the lookup
// can't price means the market and the portfolio disagree, reported as
// ErrInconsistentState.
func (p *Portfolio) TotalValue(prices PriceLookup) (decimal.Decimal, error) {
	total := decimal.Zero
	for symbol, h := range p.holdings {
		price, ok := prices.Price(symbol)
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: no price for held symbol %s", ErrInconsistentState, symbol)
		}
		total = total.Add(h.MarketValue(price))
	}
	return total, nil
}

// TotalGainLoss returns Σ (shares × current price − shares × average cost).
func (p *Portfolio) TotalGainLoss(prices PriceLookup) (decimal.Decimal, error) {
	total := decimal.Zero
	for symbol, h := range p.holdings {
		price, ok := prices.Price(symbol)
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: no price for held symbol %s", ErrInconsistentState, symbol)
		}
		total = total.Add(h.GainLoss(price))
	}
	return total, nil
}

func (p *Portfolio) clone() *Portfolio {
	c := NewPortfolio()
	for symbol, h := range p.holdings {
		cp := *h
		c.holdings[symbol] = &cp
	}
	return c
}
