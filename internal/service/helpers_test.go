package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/engine"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/store"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(t *testing.T, cash string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Trader001", "John Doe", dec(cash))
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

// newTestEngine returns a seeded engine with an active user.
func newTestEngine(t *testing.T, cash string) *engine.TradingEngine {
	t.Helper()
	eng := engine.New(rand.New(rand.NewPCG(1, 1)))
	if err := eng.SetUser(newTestUser(t, cash)); err != nil {
		t.Fatalf("SetUser: %v", err)
	}
	return eng
}

func newTestStore(t *testing.T) *store.SnapshotStore {
	t.Helper()
	return store.NewSnapshotStore(filepath.Join(t.TempDir(), "trading_data.json"))
}

// failingStore fails every Save and counts attempts.
type failingStore struct {
	mu    sync.Mutex
	saves int
}

func (f *failingStore) Load(context.Context) (*domain.Snapshot, error) {
	return nil, errors.New("unavailable")
}

func (f *failingStore) Save(context.Context, *domain.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	return errors.New("disk full")
}

// gatedStore holds the first Save until release is closed, then passes
// every save through to the wrapped store.
type gatedStore struct {
	*store.SnapshotStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedStore(s *store.SnapshotStore) *gatedStore {
	return &gatedStore{
		SnapshotStore: s,
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
}

func (g *gatedStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.SnapshotStore.Save(ctx, snap)
}
