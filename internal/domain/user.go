package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// User is the single trader of a session: a cash balance, a portfolio and
// an append-only log of executed trades.
type User struct {
	UserID       string
	Name         string
	cash         decimal.Decimal
	portfolio    *Portfolio
	transactions []Transaction
}

// NewUser creates a user with an empty portfolio.
func NewUser(userID, name string, initialCash decimal.Decimal) (*User, error) {
	if initialCash.IsNegative() {
		return nil, &ValidationError{Message: "initial cash must be >= 0"}
	}
	return &User{
		UserID:    userID,
		Name:      name,
		cash:      initialCash,
		portfolio: NewPortfolio(),
	}, nil
}

// CashBalance returns the user's uninvested cash.
func (u *User) CashBalance() decimal.Decimal {
	return u.cash
}

// Portfolio returns the user's portfolio. Callers must not mutate it
// outside BuyStock and SellStock.
func (u *User) Portfolio() *Portfolio {
	return u.portfolio
}

// Transactions returns a copy of the trade log in chronological order.
func (u *User) Transactions() []Transaction {
	out := make([]Transaction, len(u.transactions))
	copy(out, u.transactions)
	return out
}

// BuyStock spends shares × price of cash on symbol. Either the cash
// debit, the holding update and the BUY record all happen, or nothing does.
func (u *User) BuyStock(symbol string, shares int64, price decimal.Decimal) (Transaction, error) {
	if err := validateTrade(shares, price); err != nil {
		return Transaction{}, err
	}
	total := price.Mul(decimal.NewFromInt(shares))
	if u.cash.LessThan(total) {
		return Transaction{}, ErrInsufficientBalance
	}
	if err := u.portfolio.AddHolding(symbol, shares, price); err != nil {
		return Transaction{}, err
	}
	u.cash = u.cash.Sub(total)

	tx := NewTransaction(symbol, TransactionBuy, shares, price)
	u.transactions = append(u.transactions, tx)
	return tx, nil
}

// SellStock sells shares of symbol at price into cash. It fails without
// mutation when the portfolio holds fewer than shares.
func (u *User) SellStock(symbol string, shares int64, price decimal.Decimal) (Transaction, error) {
	if err := validateTrade(shares, price); err != nil {
		return Transaction{}, err
	}
	if u.portfolio.Shares(symbol) < shares {
		return Transaction{}, ErrInsufficientHoldings
	}
	if err := u.portfolio.RemoveHolding(symbol, shares); err != nil {
		return Transaction{}, err
	}
	u.cash = u.cash.Add(price.Mul(decimal.NewFromInt(shares)))

	tx := NewTransaction(symbol, TransactionSell, shares, price)
	u.transactions = append(u.transactions, tx)
	return tx, nil
}

func validateTrade(shares int64, price decimal.Decimal) error {
	if shares <= 0 {
		return &ValidationError{Message: "shares must be > 0"}
	}
	if !price.IsPositive() {
		return &ValidationError{Message: "price must be > 0"}
	}
	return nil
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	return &User{
		UserID:       u.UserID,
		Name:         u.Name,
		cash:         u.cash,
		portfolio:    u.portfolio.clone(),
		transactions: u.Transactions(),
	}
}

// UserState is the plain, persistable form of a User.
type UserState struct {
	UserID       string
	Name         string
	CashBalance  decimal.Decimal
	Holdings     []Holding
	Transactions []Transaction
}

// State captures the user's full state.
func (u *User) State() UserState {
	return UserState{
		UserID:       u.UserID,
		Name:         u.Name,
		CashBalance:  u.cash,
		Holdings:     u.portfolio.Holdings(),
		Transactions: u.Transactions(),
	}
}

// NewUserFromState rebuilds a user from persisted state, rejecting state
// that breaks the cash, holding or log invariants.
func NewUserFromState(s UserState) (*User, error) {
	if s.CashBalance.IsNegative() {
		return nil, fmt.Errorf("%w: negative cash balance %s", ErrInvalidSnapshot, s.CashBalance)
	}
	p := NewPortfolio()
	for _, h := range s.Holdings {
		if h.Shares <= 0 {
			return nil, fmt.Errorf("%w: holding %s has %d shares", ErrInvalidSnapshot, h.Symbol, h.Shares)
		}
		if h.AverageCost.IsNegative() {
			return nil, fmt.Errorf("%w: holding %s has negative average cost", ErrInvalidSnapshot, h.Symbol)
		}
		if _, dup := p.holdings[h.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate holding %s", ErrInvalidSnapshot, h.Symbol)
		}
		cp := h
		p.holdings[h.Symbol] = &cp
	}
	for _, tx := range s.Transactions {
		if !tx.Type.Valid() || tx.Shares <= 0 || !tx.Price.IsPositive() {
			return nil, fmt.Errorf("%w: malformed transaction %s", ErrInvalidSnapshot, tx.TransactionID)
		}
	}
	txs := make([]Transaction, len(s.Transactions))
	copy(txs, s.Transactions)
	return &User{
		UserID:       s.UserID,
		Name:         s.Name,
		cash:         s.CashBalance,
		portfolio:    p,
		transactions: txs,
	}, nil
}
