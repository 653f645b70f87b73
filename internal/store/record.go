package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
)

// formatVersion is written into every snapshot file. Files with a
// different version are rejected on load.
const formatVersion = 1

// Records below are the on-disk shape of a snapshot. Money is stored as
// exact decimal strings and times as RFC 3339.

type snapshotRecord struct {
	Version int           `json:"version" yaml:"version"`
	SavedAt string        `json:"saved_at" yaml:"saved_at"`
	Stocks  []stockRecord `json:"stocks" yaml:"stocks"`
	User    *userRecord   `json:"user,omitempty" yaml:"user,omitempty"`
}

type stockRecord struct {
	Symbol        string `json:"symbol" yaml:"symbol"`
	CompanyName   string `json:"company_name" yaml:"company_name"`
	CurrentPrice  string `json:"current_price" yaml:"current_price"`
	OpenPrice     string `json:"open_price" yaml:"open_price"`
	PreviousClose string `json:"previous_close" yaml:"previous_close"`
	Volume        int64  `json:"volume" yaml:"volume"`
	MarketCap     string `json:"market_cap" yaml:"market_cap"`
}

type userRecord struct {
	UserID       string              `json:"user_id" yaml:"user_id"`
	Name         string              `json:"name" yaml:"name"`
	CashBalance  string              `json:"cash_balance" yaml:"cash_balance"`
	Holdings     []holdingRecord     `json:"holdings" yaml:"holdings"`
	Transactions []transactionRecord `json:"transactions" yaml:"transactions"`
}

type holdingRecord struct {
	Symbol      string `json:"symbol" yaml:"symbol"`
	Shares      int64  `json:"shares" yaml:"shares"`
	AverageCost string `json:"average_cost" yaml:"average_cost"`
}

type transactionRecord struct {
	TransactionID string `json:"transaction_id" yaml:"transaction_id"`
	Symbol        string `json:"symbol" yaml:"symbol"`
	Type          string `json:"type" yaml:"type"`
	Shares        int64  `json:"shares" yaml:"shares"`
	Price         string `json:"price" yaml:"price"`
	TotalAmount   string `json:"total_amount" yaml:"total_amount"`
	Timestamp     string `json:"timestamp" yaml:"timestamp"`
}

func toRecord(snap *domain.Snapshot) *snapshotRecord {
	rec := &snapshotRecord{
		Version: formatVersion,
		SavedAt: snap.SavedAt.UTC().Format(time.RFC3339Nano),
		Stocks:  make([]stockRecord, len(snap.Stocks)),
	}
	for i, s := range snap.Stocks {
		rec.Stocks[i] = stockRecord{
			Symbol:        s.Symbol,
			CompanyName:   s.CompanyName,
			CurrentPrice:  s.CurrentPrice.String(),
			OpenPrice:     s.OpenPrice.String(),
			PreviousClose: s.PreviousClose.String(),
			Volume:        s.Volume,
			MarketCap:     s.MarketCap.String(),
		}
	}
	if snap.User == nil {
		return rec
	}

	u := snap.User
	ur := &userRecord{
		UserID:       u.UserID,
		Name:         u.Name,
		CashBalance:  u.CashBalance.String(),
		Holdings:     make([]holdingRecord, len(u.Holdings)),
		Transactions: make([]transactionRecord, len(u.Transactions)),
	}
	for i, h := range u.Holdings {
		ur.Holdings[i] = holdingRecord{
			Symbol:      h.Symbol,
			Shares:      h.Shares,
			AverageCost: h.AverageCost.String(),
		}
	}
	for i, tx := range u.Transactions {
		ur.Transactions[i] = transactionRecord{
			TransactionID: tx.TransactionID,
			Symbol:        tx.Symbol,
			Type:          string(tx.Type),
			Shares:        tx.Shares,
			Price:         tx.Price.String(),
			TotalAmount:   tx.TotalAmount.String(),
			Timestamp:     tx.Timestamp.UTC().Format(time.RFC3339Nano),
		}
	}
	rec.User = ur
	return rec
}

// fromRecord converts a decoded record back into a domain snapshot. It
// checks only what the record format itself requires; domain invariants
// are checked by Snapshot.Validate.
func fromRecord(rec *snapshotRecord) (*domain.Snapshot, error) {
	if rec.Version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", domain.ErrInvalidSnapshot, rec.Version)
	}
	savedAt, err := parseTime("saved_at", rec.SavedAt)
	if err != nil {
		return nil, err
	}

	p := &parser{}
	snap := &domain.Snapshot{
		SavedAt: savedAt,
		Stocks:  make([]domain.Stock, len(rec.Stocks)),
	}
	for i, s := range rec.Stocks {
		snap.Stocks[i] = domain.Stock{
			Symbol:        s.Symbol,
			CompanyName:   s.CompanyName,
			CurrentPrice:  p.decimal(s.Symbol+".current_price", s.CurrentPrice),
			OpenPrice:     p.decimal(s.Symbol+".open_price", s.OpenPrice),
			PreviousClose: p.decimal(s.Symbol+".previous_close", s.PreviousClose),
			Volume:        s.Volume,
			MarketCap:     p.decimal(s.Symbol+".market_cap", s.MarketCap),
		}
	}

	if rec.User != nil {
		u := rec.User
		state := &domain.UserState{
			UserID:       u.UserID,
			Name:         u.Name,
			CashBalance:  p.decimal("cash_balance", u.CashBalance),
			Holdings:     make([]domain.Holding, len(u.Holdings)),
			Transactions: make([]domain.Transaction, len(u.Transactions)),
		}
		for i, h := range u.Holdings {
			state.Holdings[i] = domain.Holding{
				Symbol:      h.Symbol,
				Shares:      h.Shares,
				AverageCost: p.decimal(h.Symbol+".average_cost", h.AverageCost),
			}
		}
		for i, tx := range u.Transactions {
			ts, err := parseTime(tx.TransactionID+".timestamp", tx.Timestamp)
			if err != nil {
				return nil, err
			}
			state.Transactions[i] = domain.Transaction{
				TransactionID: tx.TransactionID,
				Symbol:        tx.Symbol,
				Type:          domain.TransactionType(tx.Type),
				Shares:        tx.Shares,
				Price:         p.decimal(tx.TransactionID+".price", tx.Price),
				TotalAmount:   p.decimal(tx.TransactionID+".total_amount", tx.TotalAmount),
				Timestamp:     ts,
			}
		}
		snap.User = state
	}

	if p.err != nil {
		return nil, p.err
	}
	return snap, nil
}

// parser collects the first decimal parse error so record conversion can
// read every field without checking each one.
type parser struct {
	err error
}

func (p *parser) decimal(field, s string) decimal.Decimal {
	if p.err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		p.err = fmt.Errorf("%w: %s: %q is not a decimal", domain.ErrInvalidSnapshot, field, s)
		return decimal.Zero
	}
	return d
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %q is not an RFC 3339 time", domain.ErrInvalidSnapshot, field, s)
	}
	return t.UTC(), nil
}
