package domain

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency every simulated price and balance is quoted in.
const Currency = money.USD

// ParseAmount converts a float64 dollar amount to an exact decimal.
// It rejects inputs with more than 2 decimal places.
func ParseAmount(f float64) (decimal.Decimal, error) {
	d := decimal.NewFromFloat(f)
	if !d.Equal(d.Round(2)) {
		return decimal.Zero, fmt.Errorf("monetary values must have at most 2 decimal places")
	}
	return d, nil
}

// Cents returns d rounded to the nearest cent, expressed in cents.
func Cents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

// FormatMoney renders d as a USD display string, e.g. "$98,215.00".
func FormatMoney(d decimal.Decimal) string {
	return money.New(Cents(d), Currency).Display()
}

// FormatSignedMoney is FormatMoney with an explicit "+" for positive amounts.
func FormatSignedMoney(d decimal.Decimal) string {
	if d.Round(2).IsPositive() {
		return "+" + FormatMoney(d)
	}
	return FormatMoney(d)
}

// FormatPercent renders a ratio as a signed percentage: 0.0123 → "+1.23%".
func FormatPercent(ratio decimal.Decimal) string {
	pct := ratio.Shift(2).Round(2)
	if pct.IsNegative() {
		return pct.StringFixed(2) + "%"
	}
	return "+" + pct.StringFixed(2) + "%"
}

// FormatVolume abbreviates a share volume: 1234567 → "1.23M".
func FormatVolume(v int64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(v)/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.2fK", float64(v)/1_000)
	}
	return fmt.Sprintf("%d", v)
}

var (
	trillion = decimal.New(1, 12)
	billion  = decimal.New(1, 9)
	million  = decimal.New(1, 6)
)

// FormatMarketCap abbreviates a market capitalization: 2.8e12 → "$2.80T".
func FormatMarketCap(d decimal.Decimal) string {
	switch {
	case d.GreaterThanOrEqual(trillion):
		return "$" + d.Div(trillion).StringFixed(2) + "T"
	case d.GreaterThanOrEqual(billion):
		return "$" + d.Div(billion).StringFixed(2) + "B"
	case d.GreaterThanOrEqual(million):
		return "$" + d.Div(million).StringFixed(2) + "M"
	}
	return FormatMoney(d)
}
