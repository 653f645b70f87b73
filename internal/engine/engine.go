package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
)

// HoldingValuation is a holding priced against the live market.
type HoldingValuation struct {
	Symbol          string
	CompanyName     string
	Shares          int64
	AverageCost     decimal.Decimal
	CurrentPrice    decimal.Decimal
	MarketValue     decimal.Decimal
	GainLoss        decimal.Decimal
	GainLossPercent decimal.Decimal
}

// Account is a consistent view of the active user's cash and positions.
type Account struct {
	UserID         string
	Name           string
	CashBalance    decimal.Decimal
	Holdings       []HoldingValuation
	TotalValue     decimal.Decimal // market value of all holdings
	TotalCostBasis decimal.Decimal
	TotalGainLoss  decimal.Decimal
	NetWorth       decimal.Decimal // cash + TotalValue
}

// TradingEngine owns the stock universe and the active user. Every
// operation runs under one mutex, so price ticks and trades never
// interleave even when driven from different goroutines.
type TradingEngine struct {
	mu     sync.Mutex
	rng    domain.Randomizer
	market *Market
	user   *domain.User
	now    func() time.Time
	gen    uint64
}

// New creates an engine over a fresh seed universe with no active user.
// rng drives both the starting volumes and every subsequent tick.
func New(rng domain.Randomizer) *TradingEngine {
	return &TradingEngine{
		rng:    rng,
		market: NewMarket(domain.NewSeedStocks(rng)),
		now:    time.Now,
	}
}

// SetUser makes u the active user. Every symbol u holds or has traded
// must be listed in the market.
func (e *TradingEngine) SetUser(u *domain.User) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := checkListed(e.market, u.State()); err != nil {
		return err
	}
	e.user = u
	return nil
}

// User returns a copy of the active user.
func (e *TradingEngine) User() (*domain.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.user == nil {
		return nil, domain.ErrNoActiveUser
	}
	return e.user.Clone(), nil
}

// Stock returns a copy of the stock listed under symbol.
func (e *TradingEngine) Stock(symbol string) (domain.Stock, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.market.Get(symbol)
	if !ok {
		return domain.Stock{}, domain.ErrStockNotFound
	}
	return *s, nil
}

// Stocks returns copies of every listed stock in symbol order.
func (e *TradingEngine) Stocks() []domain.Stock {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.market.Copy()
}

// UpdateMarketPrices ticks every stock once. It does not persist.
func (e *TradingEngine) UpdateMarketPrices() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tickLocked()
}

// AdvanceMarket ticks every stock and returns the resulting state as a
// snapshot captured under the same lock, ready to be persisted.
func (e *TradingEngine) AdvanceMarket() *domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tickLocked()
	return e.snapshotLocked()
}

func (e *TradingEngine) tickLocked() {
	e.market.Walk(func(s *domain.Stock) bool {
		s.Tick(e.rng)
		return true
	})
}

// BuyStock buys shares of symbol for the active user at the engine's
// current price.
func (e *TradingEngine) BuyStock(symbol string, shares int64) (domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.tradableLocked(symbol)
	if err != nil {
		return domain.Transaction{}, err
	}
	return e.user.BuyStock(symbol, shares, s.CurrentPrice)
}

// SellStock sells shares of symbol for the active user at the engine's
// current price.
func (e *TradingEngine) SellStock(symbol string, shares int64) (domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.tradableLocked(symbol)
	if err != nil {
		return domain.Transaction{}, err
	}
	return e.user.SellStock(symbol, shares, s.CurrentPrice)
}

func (e *TradingEngine) tradableLocked(symbol string) (*domain.Stock, error) {
	s, ok := e.market.Get(symbol)
	if !ok {
		return nil, domain.ErrStockNotFound
	}
	if e.user == nil {
		return nil, domain.ErrNoActiveUser
	}
	return s, nil
}

// Account values the active user's portfolio at current prices.
func (e *TradingEngine) Account() (*Account, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.user == nil {
		return nil, domain.ErrNoActiveUser
	}

	p := e.user.Portfolio()
	totalValue, err := p.TotalValue(e.market)
	if err != nil {
		return nil, err
	}
	totalGain, err := p.TotalGainLoss(e.market)
	if err != nil {
		return nil, err
	}

	holdings := p.Holdings()
	rows := make([]HoldingValuation, len(holdings))
	for i, h := range holdings {
		s, _ := e.market.Get(h.Symbol) // presence checked by TotalValue
		rows[i] = HoldingValuation{
			Symbol:          h.Symbol,
			CompanyName:     s.CompanyName,
			Shares:          h.Shares,
			AverageCost:     h.AverageCost,
			CurrentPrice:    s.CurrentPrice,
			MarketValue:     h.MarketValue(s.CurrentPrice),
			GainLoss:        h.GainLoss(s.CurrentPrice),
			GainLossPercent: h.GainLossPercent(s.CurrentPrice),
		}
	}

	cash := e.user.CashBalance()
	return &Account{
		UserID:         e.user.UserID,
		Name:           e.user.Name,
		CashBalance:    cash,
		Holdings:       rows,
		TotalValue:     totalValue,
		TotalCostBasis: p.TotalCostBasis(),
		TotalGainLoss:  totalGain,
		NetWorth:       cash.Add(totalValue),
	}, nil
}

// Transactions returns the active user's trade log, oldest first.
func (e *TradingEngine) Transactions() ([]domain.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.user == nil {
		return nil, domain.ErrNoActiveUser
	}
	return e.user.Transactions(), nil
}

// Snapshot captures the full engine state.
func (e *TradingEngine) Snapshot() *domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked()
}

func (e *TradingEngine) snapshotLocked() *domain.Snapshot {
	e.gen++
	snap := &domain.Snapshot{
		SavedAt:    e.now().UTC(),
		Stocks:     e.market.Copy(),
		Generation: e.gen,
	}
	if e.user != nil {
		state := e.user.State()
		snap.User = &state
	}
	return snap
}

// Restore replaces the market, and the user when the snapshot carries
// one, with the snapshot's contents. An invalid snapshot is rejected and
// leaves the engine untouched.
func (e *TradingEngine) Restore(snap *domain.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	stocks := make([]*domain.Stock, len(snap.Stocks))
	for i := range snap.Stocks {
		s := snap.Stocks[i]
		stocks[i] = &s
	}
	market := NewMarket(stocks)

	var user *domain.User
	if snap.User != nil {
		u, err := domain.NewUserFromState(*snap.User)
		if err != nil {
			return err
		}
		user = u
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if user == nil && e.user != nil {
		if err := checkListed(market, e.user.State()); err != nil {
			return err
		}
		user = e.user
	}
	e.market = market
	e.user = user
	return nil
}

// checkListed enforces that every symbol a user refers to is in market.
func checkListed(market *Market, u domain.UserState) error {
	for _, h := range u.Holdings {
		if _, ok := market.Get(h.Symbol); !ok {
			return fmt.Errorf("%w: holding %s is not listed", domain.ErrInconsistentState, h.Symbol)
		}
	}
	for _, tx := range u.Transactions {
		if _, ok := market.Get(tx.Symbol); !ok {
			return fmt.Errorf("%w: transaction %s references unlisted %s", domain.ErrInconsistentState, tx.TransactionID, tx.Symbol)
		}
	}
	return nil
}
