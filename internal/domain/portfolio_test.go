package domain

import (
	"errors"
	"testing"
)

func TestPortfolio_AddHolding_CreatesThenAverages(t *testing.T) {
	p := NewPortfolio()
	if err := p.AddHolding("AAPL", 10, dec("100")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.AddHolding("AAPL", 10, dec("120")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h, ok := p.Holding("AAPL")
	if !ok {
		t.Fatal("expected AAPL holding")
	}
	if h.Shares != 20 || !h.AverageCost.Equal(dec("110")) {
		t.Errorf("holding = %d @ %s, want 20 @ 110", h.Shares, h.AverageCost)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPortfolio_AddHolding_InvalidLeavesNoHolding(t *testing.T) {
	p := NewPortfolio()
	if err := p.AddHolding("AAPL", 0, dec("100")); err == nil {
		t.Fatal("expected error for zero shares")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPortfolio_RemoveHolding(t *testing.T) {
	p := NewPortfolio()
	_ = p.AddHolding("AAPL", 10, dec("100"))

	if err := p.RemoveHolding("AAPL", 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Shares("AAPL"); got != 6 {
		t.Errorf("Shares(AAPL) = %d, want 6", got)
	}

	// Selling the rest removes the holding entirely.
	if err := p.RemoveHolding("AAPL", 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.Holding("AAPL"); ok {
		t.Error("holding with zero shares should be removed")
	}
	if got := p.Shares("AAPL"); got != 0 {
		t.Errorf("Shares(AAPL) = %d, want 0", got)
	}
}

func TestPortfolio_RemoveHolding_Failures(t *testing.T) {
	p := NewPortfolio()
	_ = p.AddHolding("AAPL", 5, dec("100"))

	if err := p.RemoveHolding("MSFT", 1); !errors.Is(err, ErrHoldingNotFound) {
		t.Errorf("expected ErrHoldingNotFound, got %v", err)
	}
	if err := p.RemoveHolding("AAPL", 6); !errors.Is(err, ErrInsufficientHoldings) {
		t.Errorf("expected ErrInsufficientHoldings, got %v", err)
	}
	if got := p.Shares("AAPL"); got != 5 {
		t.Errorf("Shares(AAPL) = %d, want 5", got)
	}
}

func TestPortfolio_Shares_Absent(t *testing.T) {
	if got := NewPortfolio().Shares("NOPE"); got != 0 {
		t.Errorf("Shares(NOPE) = %d, want 0", got)
	}
}

func TestPortfolio_Holdings_SortedCopies(t *testing.T) {
	p := NewPortfolio()
	_ = p.AddHolding("MSFT", 1, dec("300"))
	_ = p.AddHolding("AAPL", 2, dec("100"))
	_ = p.AddHolding("GOOGL", 3, dec("140"))

	hs := p.Holdings()
	want := []string{"AAPL", "GOOGL", "MSFT"}
	if len(hs) != len(want) {
		t.Fatalf("got %d holdings, want %d", len(hs), len(want))
	}
	for i, sym := range want {
		if hs[i].Symbol != sym {
			t.Errorf("Holdings()[%d] = %s, want %s", i, hs[i].Symbol, sym)
		}
	}

	hs[0].Shares = 999
	if p.Shares("AAPL") != 2 {
		t.Error("mutating a returned holding must not affect the portfolio")
	}
}

func TestPortfolio_Totals(t *testing.T) {
	p := NewPortfolio()
	_ = p.AddHolding("AAPL", 10, dec("100"))
	_ = p.AddHolding("MSFT", 2, dec("300"))
	prices := mapPrices{"AAPL": dec("110"), "MSFT": dec("250")}

	value, err := p.TotalValue(prices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(dec("1600")) {
		t.Errorf("TotalValue = %s, want 1600", value)
	}

	gain, err := p.TotalGainLoss(prices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (1100 − 1000) + (500 − 600)
	if !gain.Equal(dec("0")) {
		t.Errorf("TotalGainLoss = %s, want 0", gain)
	}
	if got := p.TotalCostBasis(); !got.Equal(dec("1600")) {
		t.Errorf("TotalCostBasis = %s, want 1600", got)
	}
}

func TestPortfolio_Totals_MissingPrice(t *testing.T) {
	p := NewPortfolio()
	_ = p.AddHolding("AAPL", 10, dec("100"))

	if _, err := p.TotalValue(mapPrices{}); !errors.Is(err, ErrInconsistentState) {
		t.Errorf("TotalValue: expected ErrInconsistentState, got %v", err)
	}
	if _, err := p.TotalGainLoss(mapPrices{}); !errors.Is(err, ErrInconsistentState) {
		t.Errorf("TotalGainLoss: expected ErrInconsistentState, got %v", err)
	}
}

func TestPortfolio_Totals_Empty(t *testing.T) {
	value, err := NewPortfolio().TotalValue(mapPrices{})
	if err != nil || !value.IsZero() {
		t.Errorf("TotalValue() = %s, %v; want 0, nil", value, err)
	}
}
