package domain

import "github.com/shopspring/decimal"

// Holding is a user's position in a single stock symbol.
type Holding struct {
	Symbol      string
	Shares      int64
	AverageCost decimal.Decimal // weighted average purchase price
}

// AddShares records a purchase of n shares at price, folding it into the
// weighted average cost.
func (h *Holding) AddShares(n int64, price decimal.Decimal) error {
	if n <= 0 {
		return &ValidationError{Message: "shares must be > 0"}
	}
	if !price.IsPositive() {
		return &ValidationError{Message: "price must be > 0"}
	}
	total := h.CostBasis().Add(price.Mul(decimal.NewFromInt(n)))
	h.Shares += n
	h.AverageCost = total.Div(decimal.NewFromInt(h.Shares))
	return nil
}

// RemoveShares decrements the share count. The average cost is unchanged;
// realized gain is the caller's concern.
func (h *Holding) RemoveShares(n int64) error {
	if n <= 0 {
		return &ValidationError{Message: "shares must be > 0"}
	}
	if n > h.Shares {
		return ErrInsufficientHoldings
	}
	h.Shares -= n
	return nil
}

// CostBasis returns Shares × AverageCost.
func (h *Holding) CostBasis() decimal.Decimal {
	return h.AverageCost.Mul(decimal.NewFromInt(h.Shares))
}

// MarketValue returns Shares × price.
func (h *Holding) MarketValue(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(h.Shares))
}

// GainLoss returns the unrealized gain (negative for a loss) at price.
func (h *Holding) GainLoss(price decimal.Decimal) decimal.Decimal {
	return h.MarketValue(price).Sub(h.CostBasis())
}

// GainLossPercent returns the unrealized gain per share as a ratio of
// AverageCost, or zero when the cost is zero.
func (h *Holding) GainLossPercent(price decimal.Decimal) decimal.Decimal {
	if h.AverageCost.IsZero() {
		return decimal.Zero
	}
	return price.Sub(h.AverageCost).Div(h.AverageCost)
}
