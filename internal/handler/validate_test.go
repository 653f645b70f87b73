package handler

import (
	"errors"
	"testing"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/service"
)

func TestValidateRequest_SymbolRule(t *testing.T) {
	v := newValidator()

	tests := []struct {
		symbol string
		valid  bool
	}{
		{"AAPL", true},
		{"aapl", true},
		{"BrK", true},
		{" MSFT ", true},
		{"ABCDEFGHIJ", true},
		{"ABCDEFGHIJK", false},
		{"AA PL", false},
		{"BRK.B", false},
		{"A1", false},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			err := validateRequest(v, &tradeRequest{Symbol: tt.symbol, Shares: 1})
			if tt.valid && err != nil {
				t.Errorf("expected %q to be accepted, got %v", tt.symbol, err)
			}
			if !tt.valid {
				var ve *domain.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected ValidationError for %q, got %v", tt.symbol, err)
				}
				if ve.Message != "symbol must be 1-10 letters" {
					t.Errorf("message = %q", ve.Message)
				}
			}
			if got := service.ValidSymbol(tt.symbol); got != tt.valid {
				t.Errorf("service.ValidSymbol(%q) = %v, handler rule says %v", tt.symbol, got, tt.valid)
			}
		})
	}
}

func TestValidateRequest_SharesRule(t *testing.T) {
	v := newValidator()

	err := validateRequest(v, &tradeRequest{Symbol: "AAPL", Shares: -1})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "shares must be greater than 0" {
		t.Errorf("message = %q", ve.Message)
	}
}
