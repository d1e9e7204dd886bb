// Package store keeps analyzed strings keyed by their value.
package store

import (
	"context"

	"github.com/hpungsan/sift/internal/analysis"
	"github.com/hpungsan/sift/internal/config"
)

// Store is the record collection. Values are unique; Snapshot returns records
// in insertion order.
type Store interface {
	// Insert adds rec. Returns ALREADY_EXISTS if rec.Value is already stored.
	Insert(ctx context.Context, rec analysis.Record) error

	// Get returns the record for value. Returns NOT_FOUND if absent.
	Get(ctx context.Context, value string) (*analysis.Record, error)

	// Delete removes the record for value. Returns NOT_FOUND if absent.
	Delete(ctx context.Context, value string) error

	// Snapshot returns a copy of every record in insertion order.
	Snapshot(ctx context.Context) ([]analysis.Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	Close() error
}

// Open builds the store selected by cfg.Storage. Persistent stores live
// under baseDir.
func Open(cfg *config.Config, baseDir string) (Store, error) {
	storage := config.StorageSQLite
	if cfg != nil && cfg.Storage != "" {
		storage = cfg.Storage
	}

	switch storage {
	case config.StorageMemory:
		return NewMemory(), nil
	case config.StorageBadger:
		return OpenBadger(baseDir)
	default:
		return OpenSQL(cfg, baseDir)
	}
}
