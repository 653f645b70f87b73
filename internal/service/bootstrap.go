package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/engine"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/store"
)

// BootstrapResult describes where the engine's starting state came from.
type BootstrapResult struct {
	Restored     bool // market restored from the snapshot
	UserRestored bool // active user restored from the snapshot
}

// Bootstrap loads the saved session into eng. A missing, unreadable or
// invalid snapshot never stops startup: the engine keeps its fresh seed
// market and fallback becomes the active user. The only error returned
// is one from installing fallback itself.
func Bootstrap(
	ctx context.Context,
	eng *engine.TradingEngine,
	snapshots SnapshotStore,
	fallback *domain.User,
	logger *slog.Logger,
) (BootstrapResult, error) {
	var res BootstrapResult

	snap, err := snapshots.Load(ctx)
	switch {
	case errors.Is(err, store.ErrSnapshotNotFound):
		logger.Info("no saved session, starting fresh")
	case err != nil:
		logger.Error("saved session unreadable, starting fresh", slog.String("error", err.Error()))
	default:
		if err := eng.Restore(snap); err != nil {
			logger.Error("saved session rejected, starting fresh", slog.String("error", err.Error()))
			break
		}
		res.Restored = true
		res.UserRestored = snap.User != nil
		logger.Info("session restored",
			slog.Int("stocks", len(snap.Stocks)),
			slog.Bool("user", res.UserRestored),
			slog.Time("saved_at", snap.SavedAt),
		)
	}

	if res.UserRestored {
		return res, nil
	}
	return res, eng.SetUser(fallback)
}
