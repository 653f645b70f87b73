package engine

import (
	"github.com/google/btree"
	"github.com/shopspring/decimal"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
)

// bySymbol orders stocks alphabetically so that listing the market is
// deterministic regardless of insertion order.
func bySymbol(a, b *domain.Stock) bool {
	return a.Symbol < b.Symbol
}

// Market is the stock universe indexed by symbol in a B-tree. It is not
// safe for concurrent use; TradingEngine serializes access to it.
type Market struct {
	stocks *btree.BTreeG[*domain.Stock]
}

// NewMarket indexes the given stocks. A later stock with the same symbol
// replaces an earlier one.
func NewMarket(stocks []*domain.Stock) *Market {
	const degree = 8
	m := &Market{
		stocks: btree.NewG[*domain.Stock](degree, bySymbol),
	}
	for _, s := range stocks {
		m.stocks.ReplaceOrInsert(s)
	}
	return m
}

// Get returns the live stock for symbol.
func (m *Market) Get(symbol string) (*domain.Stock, bool) {
	return m.stocks.Get(&domain.Stock{Symbol: symbol})
}

// Price implements domain.PriceLookup.
func (m *Market) Price(symbol string) (decimal.Decimal, bool) {
	s, ok := m.Get(symbol)
	if !ok {
		return decimal.Zero, false
	}
	return s.CurrentPrice, true
}

// Walk iterates stocks in symbol order. The callback returns false to stop.
func (m *Market) Walk(fn func(*domain.Stock) bool) {
	m.stocks.Ascend(fn)
}

// Len returns the number of listed stocks.
func (m *Market) Len() int {
	return m.stocks.Len()
}

// Copy returns value copies of every stock in symbol order.
func (m *Market) Copy() []domain.Stock {
	out := make([]domain.Stock, 0, m.stocks.Len())
	m.Walk(func(s *domain.Stock) bool {
		out = append(out, *s)
		return true
	})
	return out
}
