package domain

import (
	"fmt"
	"time"
)

// Snapshot is the durable image of a trading session: the whole stock
// universe and, when one is active, the user.
type Snapshot struct {
	SavedAt time.Time
	Stocks  []Stock
	User    *UserState

	// Generation orders snapshots taken from the same engine: a higher
	// value describes a later state. Zero means unordered. It is not
	// written to disk.
	Generation uint64
}

// Validate checks the invariants a snapshot must satisfy before it can
// replace live state. Every symbol the user refers to must be listed.
func (s *Snapshot) Validate() error {
	if len(s.Stocks) == 0 {
		return fmt.Errorf("%w: no stocks", ErrInvalidSnapshot)
	}
	listed := make(map[string]bool, len(s.Stocks))
	for _, st := range s.Stocks {
		if st.Symbol == "" {
			return fmt.Errorf("%w: stock with empty symbol", ErrInvalidSnapshot)
		}
		if listed[st.Symbol] {
			return fmt.Errorf("%w: duplicate stock %s", ErrInvalidSnapshot, st.Symbol)
		}
		if st.CurrentPrice.LessThan(MinPrice) {
			return fmt.Errorf("%w: %s priced below %s", ErrInvalidSnapshot, st.Symbol, MinPrice)
		}
		if st.Volume < 0 {
			return fmt.Errorf("%w: %s has negative volume", ErrInvalidSnapshot, st.Symbol)
		}
		listed[st.Symbol] = true
	}
	if s.User == nil {
		return nil
	}
	for _, h := range s.User.Holdings {
		if !listed[h.Symbol] {
			return fmt.Errorf("%w: holding %s is not a listed stock", ErrInvalidSnapshot, h.Symbol)
		}
	}
	for _, tx := range s.User.Transactions {
		if !listed[tx.Symbol] {
			return fmt.Errorf("%w: transaction %s references unlisted %s", ErrInvalidSnapshot, tx.TransactionID, tx.Symbol)
		}
	}
	return nil
}
