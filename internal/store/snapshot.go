package store

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
)

// ErrSnapshotNotFound is returned by Load when no snapshot file exists.
var ErrSnapshotNotFound = errors.New("snapshot_not_found")

// SnapshotStore persists engine snapshots to a single file. The format
// follows the file extension: .json (default), .yaml or .yml, each
// optionally followed by .gz.
type SnapshotStore struct {
	mu      sync.Mutex
	path    string
	lastGen uint64 // highest Generation written so far
}

// NewSnapshotStore creates a store backed by the file at path. The file
// does not need to exist yet.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the snapshot file location.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Load reads and validates the snapshot. It returns ErrSnapshotNotFound
// when the file is absent; any decode or invariant failure wraps
// domain.ErrInvalidSnapshot.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	c, gzipped := formatFor(s.path)
	var r io.Reader = f
	if gzipped {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
		}
		defer zr.Close()
		r = zr
	}

	var rec snapshotRecord
	if err := c.decode(r, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	snap, err := fromRecord(&rec)
	if err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save writes snap atomically: the record goes to a temporary file in the
// same directory, which is synced and then renamed over the target. A
// failed save leaves the previous file intact.
//
// A snapshot whose Generation is not newer than one already written is
// skipped and reported as saved, so a slow writer never replaces a later
// state with an earlier one.
func (s *SnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Generation != 0 && snap.Generation <= s.lastGen {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := s.write(tmp, toRecord(snap)); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	committed = true
	if snap.Generation > s.lastGen {
		s.lastGen = snap.Generation
	}
	return nil
}

func (s *SnapshotStore) write(w io.Writer, rec *snapshotRecord) error {
	c, gzipped := formatFor(s.path)
	if !gzipped {
		return c.encode(w, rec)
	}
	zw := gzip.NewWriter(w)
	if err := c.encode(zw, rec); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
