package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes purchases from sales.
type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionBuy || t == TransactionSell
}

// Transaction is the immutable record of one executed trade.
type Transaction struct {
	TransactionID string
	Symbol        string
	Type          TransactionType
	Shares        int64
	Price         decimal.Decimal
	TotalAmount   decimal.Decimal // Shares × Price
	Timestamp     time.Time
}

// NewTransaction records a fill of shares at price, stamped with a fresh
// UUID and the current UTC time.
func NewTransaction(symbol string, typ TransactionType, shares int64, price decimal.Decimal) Transaction {
	return Transaction{
		TransactionID: uuid.New().String(),
		Symbol:        symbol,
		Type:          typ,
		Shares:        shares,
		Price:         price,
		TotalAmount:   price.Mul(decimal.NewFromInt(shares)),
		Timestamp:     time.Now().UTC(),
	}
}
