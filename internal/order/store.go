package order

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/shashiranjanraj/altindan/internal/jsondb"
	"github.com/shashiranjanraj/altindan/pkg/logger"
	"github.com/shashiranjanraj/altindan/pkg/metrics"
)

// Store keeps orders durable in a single JSON document.
//
// Append serialises the full read-modify-write-rename cycle behind the
// document lock, so any number of concurrent intake requests produce a
// consistent file. ListAll reads without the lock and relies on the atomic
// rename for a consistent snapshot.
type Store struct {
	file *jsondb.File
}

// NewStore opens the order document inside dataDir.
func NewStore(dataDir string) *Store {
	return &Store{file: jsondb.Open(filepath.Join(dataDir, "orders.json"))}
}

// Append durably adds one order. When it returns nil the order is on disk.
// A corrupt existing document is logged and treated as empty — a damaged
// history must never block new orders.
func (s *Store) Append(o Order) error {
	defer metrics.ObserveStoreWrite("orders", time.Now())

	return s.file.Update(func() error {
		var orders []Order
		if _, err := s.file.Read(&orders); err != nil {
			if !errors.Is(err, jsondb.ErrCorrupt) {
				return fmt.Errorf("order store: load: %w", err)
			}
			logger.Warn("order store: document corrupt, starting fresh", "error", err)
			orders = nil
		}

		orders = append(orders, o)
		if err := s.file.Write(orders); err != nil {
			return fmt.Errorf("order store: persist: %w", err)
		}
		return nil
	})
}

// ListAll returns every recorded order. Unreadable history degrades to an
// empty list with a warning; it never fails the caller.
func (s *Store) ListAll() []Order {
	var orders []Order
	if _, err := s.file.Read(&orders); err != nil {
		logger.Warn("order store: history unreadable, returning empty list", "error", err)
		return nil
	}
	return orders
}
