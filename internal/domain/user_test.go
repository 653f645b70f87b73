package domain

import (
	"errors"
	"reflect"
	"testing"
)

func newTestUser(t *testing.T, cash string) *User {
	t.Helper()
	u, err := NewUser("Trader001", "John Doe", dec(cash))
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

func TestNewUser_NegativeCash(t *testing.T) {
	_, err := NewUser("u", "n", dec("-1"))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUser_BuyScenario(t *testing.T) {
	u := newTestUser(t, "100000.00")

	tx, err := u.BuyStock("AAPL", 10, dec("178.50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.CashBalance().Equal(dec("98215.00")) {
		t.Errorf("cash = %s, want 98215.00", u.CashBalance())
	}
	h, ok := u.Portfolio().Holding("AAPL")
	if !ok || h.Shares != 10 || !h.AverageCost.Equal(dec("178.50")) {
		t.Errorf("holding = %+v, want 10 @ 178.50", h)
	}
	txs := u.Transactions()
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if txs[0].Type != TransactionBuy || !txs[0].TotalAmount.Equal(dec("1785.00")) {
		t.Errorf("transaction = %s %s, want BUY 1785.00", txs[0].Type, txs[0].TotalAmount)
	}
	if txs[0].TransactionID != tx.TransactionID || tx.TransactionID == "" {
		t.Errorf("returned transaction %q should match logged %q", tx.TransactionID, txs[0].TransactionID)
	}

	// Average up, then close out the position.
	if _, err := u.BuyStock("AAPL", 5, dec("200.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, _ = u.Portfolio().Holding("AAPL")
	if h.Shares != 15 || !h.AverageCost.Round(4).Equal(dec("185.6667")) {
		t.Errorf("holding = %d @ %s, want 15 @ 185.6667", h.Shares, h.AverageCost)
	}

	before := u.CashBalance()
	if _, err := u.SellStock("AAPL", 15, dec("190.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := u.CashBalance().Sub(before); !got.Equal(dec("2850.00")) {
		t.Errorf("cash increased by %s, want 2850.00", got)
	}
	if _, ok := u.Portfolio().Holding("AAPL"); ok {
		t.Error("holding should be removed after selling all shares")
	}
	if got := u.Portfolio().Shares("AAPL"); got != 0 {
		t.Errorf("Shares(AAPL) = %d, want 0", got)
	}
	txs = u.Transactions()
	if len(txs) != 3 || txs[2].Type != TransactionSell {
		t.Errorf("expected BUY, BUY, SELL log, got %d entries", len(txs))
	}
}

func TestUser_BuyStock_InsufficientBalance(t *testing.T) {
	u := newTestUser(t, "1000.00")
	before := u.State()

	_, err := u.BuyStock("AAPL", 10, dec("178.50"))
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if !reflect.DeepEqual(before, u.State()) {
		t.Error("failed buy must not mutate the user")
	}
}

func TestUser_BuyStock_ExactBalance(t *testing.T) {
	u := newTestUser(t, "1785.00")
	if _, err := u.BuyStock("AAPL", 10, dec("178.50")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.CashBalance().IsZero() {
		t.Errorf("cash = %s, want 0", u.CashBalance())
	}
}

func TestUser_SellStock_InsufficientHoldings(t *testing.T) {
	u := newTestUser(t, "10000.00")
	if _, err := u.BuyStock("AAPL", 3, dec("100")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := u.State()

	tests := []struct {
		name   string
		symbol string
		shares int64
	}{
		{"more than held", "AAPL", 4},
		{"not held", "MSFT", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.SellStock(tt.symbol, tt.shares, dec("100"))
			if !errors.Is(err, ErrInsufficientHoldings) {
				t.Fatalf("expected ErrInsufficientHoldings, got %v", err)
			}
			if !reflect.DeepEqual(before, u.State()) {
				t.Error("failed sell must not mutate the user")
			}
		})
	}
}

func TestUser_InvalidTrades(t *testing.T) {
	u := newTestUser(t, "10000.00")
	tests := []struct {
		name  string
		trade func() (Transaction, error)
	}{
		{"buy zero shares", func() (Transaction, error) { return u.BuyStock("AAPL", 0, dec("10")) }},
		{"buy negative shares", func() (Transaction, error) { return u.BuyStock("AAPL", -2, dec("10")) }},
		{"buy zero price", func() (Transaction, error) { return u.BuyStock("AAPL", 1, dec("0")) }},
		{"sell zero shares", func() (Transaction, error) { return u.SellStock("AAPL", 0, dec("10")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.trade()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !u.CashBalance().Equal(dec("10000.00")) || len(u.Transactions()) != 0 {
				t.Error("invalid trade must not mutate the user")
			}
		})
	}
}

func TestUser_Clone_IsIndependent(t *testing.T) {
	u := newTestUser(t, "10000.00")
	_, _ = u.BuyStock("AAPL", 2, dec("100"))

	c := u.Clone()
	_, _ = c.BuyStock("AAPL", 3, dec("100"))

	if u.Portfolio().Shares("AAPL") != 2 || len(u.Transactions()) != 1 {
		t.Error("trading on a clone must not affect the original")
	}
	if !u.CashBalance().Equal(dec("9800")) {
		t.Errorf("original cash = %s, want 9800", u.CashBalance())
	}
}

func TestNewUserFromState_RoundTrip(t *testing.T) {
	u := newTestUser(t, "10000.00")
	_, _ = u.BuyStock("AAPL", 2, dec("100"))
	_, _ = u.BuyStock("MSFT", 1, dec("300"))
	_, _ = u.SellStock("AAPL", 1, dec("110"))

	restored, err := NewUserFromState(u.State())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(u.State(), restored.State()) {
		t.Errorf("state mismatch:\n got %+v\nwant %+v", restored.State(), u.State())
	}
}

func TestNewUserFromState_Invalid(t *testing.T) {
	valid := Transaction{TransactionID: "t", Symbol: "AAPL", Type: TransactionBuy, Shares: 1, Price: dec("1")}
	tests := []struct {
		name  string
		state UserState
	}{
		{"negative cash", UserState{CashBalance: dec("-1")}},
		{"zero shares", UserState{Holdings: []Holding{{Symbol: "AAPL", Shares: 0, AverageCost: dec("1")}}}},
		{"negative cost", UserState{Holdings: []Holding{{Symbol: "AAPL", Shares: 1, AverageCost: dec("-1")}}}},
		{"duplicate holding", UserState{Holdings: []Holding{
			{Symbol: "AAPL", Shares: 1, AverageCost: dec("1")},
			{Symbol: "AAPL", Shares: 2, AverageCost: dec("1")},
		}}},
		{"bad transaction type", UserState{Transactions: []Transaction{
			valid, {TransactionID: "x", Symbol: "AAPL", Type: "HOLD", Shares: 1, Price: dec("1")},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewUserFromState(tt.state); !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("expected ErrInvalidSnapshot, got %v", err)
			}
		})
	}
}
