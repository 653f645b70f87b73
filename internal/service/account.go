package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/engine"
)

// TradeRequest represents the input for a buy or sell.
type TradeRequest struct {
	Symbol string
	Shares int64
}

// TradeResponse is an executed trade and the cash left afterwards.
type TradeResponse struct {
	Transaction domain.Transaction
	CashBalance decimal.Decimal
	Persisted   bool
}

// AccountService executes trades for the active user and reports the
// account's valuation.
type AccountService struct {
	engine *engine.TradingEngine
	store  SnapshotStore
	logger *slog.Logger
}

// NewAccountService creates a new AccountService. store may be nil to run
// without persistence.
func NewAccountService(eng *engine.TradingEngine, store SnapshotStore, logger *slog.Logger) *AccountService {
	return &AccountService{
		engine: eng,
		store:  store,
		logger: logger,
	}
}

// Buy purchases shares at the current price and saves the session.
func (s *AccountService) Buy(ctx context.Context, req TradeRequest) (*TradeResponse, error) {
	return s.trade(ctx, req, domain.TransactionBuy)
}

// Sell sells shares at the current price and saves the session.
func (s *AccountService) Sell(ctx context.Context, req TradeRequest) (*TradeResponse, error) {
	return s.trade(ctx, req, domain.TransactionSell)
}

func (s *AccountService) trade(ctx context.Context, req TradeRequest, typ domain.TransactionType) (*TradeResponse, error) {
	symbol, err := normalizeSymbol(req.Symbol)
	if err != nil {
		return nil, err
	}
	if req.Shares <= 0 {
		return nil, &domain.ValidationError{Message: "shares must be a positive integer"}
	}

	var tx domain.Transaction
	if typ == domain.TransactionBuy {
		tx, err = s.engine.BuyStock(symbol, req.Shares)
	} else {
		tx, err = s.engine.SellStock(symbol, req.Shares)
	}
	if err != nil {
		return nil, err
	}

	snap := s.engine.Snapshot()
	s.logger.Info("trade executed",
		slog.String("transaction_id", tx.TransactionID),
		slog.String("type", string(tx.Type)),
		slog.String("symbol", tx.Symbol),
		slog.Int64("shares", tx.Shares),
		slog.String("price", tx.Price.StringFixed(2)),
	)

	resp := &TradeResponse{
		Transaction: tx,
		Persisted:   persist(ctx, s.store, s.logger, snap, "trade"),
	}
	if snap.User != nil {
		resp.CashBalance = snap.User.CashBalance
	}
	return resp, nil
}

// GetAccount values the active user's portfolio at current prices.
func (s *AccountService) GetAccount() (*engine.Account, error) {
	acct, err := s.engine.Account()
	if err != nil {
		logInconsistent(s.logger, "get_account", err)
		return nil, err
	}
	return acct, nil
}

// ListTransactions returns the active user's trade log, oldest first.
func (s *AccountService) ListTransactions() ([]domain.Transaction, error) {
	return s.engine.Transactions()
}
