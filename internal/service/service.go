// Package service orchestrates the trading engine and snapshot
// persistence for the CLI and HTTP adapters.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
)

var symbolRegex = regexp.MustCompile(`^[A-Z]{1,10}$`)

// SnapshotStore loads and saves engine snapshots.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}

// ValidSymbol reports whether symbol is acceptable once normalized:
// 1-10 letters, in any case, with surrounding space ignored.
func ValidSymbol(symbol string) bool {
	_, err := normalizeSymbol(symbol)
	return err == nil
}

// normalizeSymbol upper-cases symbol and checks its shape.
func normalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if !symbolRegex.MatchString(s) {
		return "", &domain.ValidationError{
			Message: fmt.Sprintf("symbol must match ^[A-Z]{1,10}$, got %q", symbol),
		}
	}
	return s, nil
}

// persist saves snap and reports whether it succeeded. A failed save is
// logged; the in-memory state it describes stays in effect.
func persist(ctx context.Context, saver SnapshotStore, logger *slog.Logger, snap *domain.Snapshot, reason string) bool {
	if saver == nil {
		return false
	}
	if err := saver.Save(ctx, snap); err != nil {
		logger.Error("snapshot save failed",
			slog.String("reason", reason),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

// logInconsistent reports consistency violations at error level. They
// indicate a bug, not bad input.
func logInconsistent(logger *slog.Logger, op string, err error) {
	if errors.Is(err, domain.ErrInconsistentState) {
		logger.Error("inconsistent engine state",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	}
}
