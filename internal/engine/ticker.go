package engine

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
)

// SnapshotSaver persists engine snapshots. It lets the ticker save state
// without depending on the store package.
type SnapshotSaver interface {
	Save(ctx context.Context, snap *domain.Snapshot) error
}

// MarketTicker advances the market on a fixed interval and persists the
// result after every tick. A failed save is logged and never rolls back
// the prices that were already advanced.
type MarketTicker struct {
	interval time.Duration
	engine   *TradingEngine
	saver    SnapshotSaver
	logger   *slog.Logger
	ticks    atomic.Int64
}

// NewMarketTicker creates a MarketTicker. saver may be nil to tick
// without persisting.
func NewMarketTicker(
	interval time.Duration,
	engine *TradingEngine,
	saver SnapshotSaver,
	logger *slog.Logger,
) *MarketTicker {
	return &MarketTicker{
		interval: interval,
		engine:   engine,
		saver:    saver,
		logger:   logger,
	}
}

// Start launches a background goroutine that ticks at the configured
// interval. It stops when ctx is cancelled.
func (t *MarketTicker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.tick(ctx)
			}
		}
	}()
}

func (t *MarketTicker) tick(ctx context.Context) {
	snap := t.engine.AdvanceMarket()
	t.ticks.Add(1)

	if t.saver == nil {
		return
	}
	if err := t.saver.Save(ctx, snap); err != nil {
		t.logger.Error("snapshot save failed",
			slog.String("error", err.Error()),
			slog.Int64("tick", t.ticks.Load()),
		)
		return
	}
	t.logger.Debug("market advanced", slog.Int64("tick", t.ticks.Load()))
}

// TickCount returns the number of ticks performed so far.
func (t *MarketTicker) TickCount() int64 {
	return t.ticks.Load()
}
