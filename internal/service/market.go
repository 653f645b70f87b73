package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/engine"
)

// StockQuote is a stock together with its change since the previous close.
type StockQuote struct {
	domain.Stock
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
}

func newQuote(s domain.Stock) StockQuote {
	return StockQuote{
		Stock:         s,
		Change:        s.PriceChange(),
		ChangePercent: s.ChangePercent(),
	}
}

// TickResponse reports the market after a manual tick.
type TickResponse struct {
	Stocks     []StockQuote
	Persisted  bool
	AdvancedAt time.Time
}

// MarketService lists quotes and advances the simulated market.
type MarketService struct {
	engine *engine.TradingEngine
	store  SnapshotStore
	logger *slog.Logger
}

// NewMarketService creates a new MarketService. store may be nil to run
// without persistence.
func NewMarketService(eng *engine.TradingEngine, store SnapshotStore, logger *slog.Logger) *MarketService {
	return &MarketService{
		engine: eng,
		store:  store,
		logger: logger,
	}
}

// ListStocks returns every listed stock in symbol order.
func (s *MarketService) ListStocks() []StockQuote {
	stocks := s.engine.Stocks()
	out := make([]StockQuote, len(stocks))
	for i, st := range stocks {
		out[i] = newQuote(st)
	}
	return out
}

// GetStock returns the quote for symbol.
func (s *MarketService) GetStock(symbol string) (*StockQuote, error) {
	sym, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	st, err := s.engine.Stock(sym)
	if err != nil {
		return nil, err
	}
	q := newQuote(st)
	return &q, nil
}

// Tick advances every price once and saves the result. The tick stands
// even when the save fails.
func (s *MarketService) Tick(ctx context.Context) *TickResponse {
	snap := s.engine.AdvanceMarket()
	persisted := persist(ctx, s.store, s.logger, snap, "tick")

	quotes := make([]StockQuote, len(snap.Stocks))
	for i, st := range snap.Stocks {
		quotes[i] = newQuote(st)
	}
	return &TickResponse{
		Stocks:     quotes,
		Persisted:  persisted,
		AdvancedAt: snap.SavedAt,
	}
}
