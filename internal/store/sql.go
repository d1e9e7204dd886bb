package store

import (
	"context"
	"database/sql"

	"github.com/hpungsan/sift/internal/analysis"
	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/db"
)

// SQL is a Store persisted in SQLite.
type SQL struct {
	db *sql.DB
}

// OpenSQL opens (and migrates) baseDir/sift.db.
func OpenSQL(cfg *config.Config, baseDir string) (*SQL, error) {
	database, err := db.Init(baseDir)
	if err != nil {
		return nil, err
	}
	db.ConfigurePool(database, cfg)
	return &SQL{db: database}, nil
}

func (s *SQL) Insert(ctx context.Context, rec analysis.Record) error {
	return db.Insert(ctx, s.db, rec)
}

func (s *SQL) Get(ctx context.Context, value string) (*analysis.Record, error) {
	return db.GetByValue(ctx, s.db, value)
}

func (s *SQL) Delete(ctx context.Context, value string) error {
	return db.DeleteByValue(ctx, s.db, value)
}

func (s *SQL) Snapshot(ctx context.Context) ([]analysis.Record, error) {
	return db.ListAll(ctx, s.db)
}

func (s *SQL) Count(ctx context.Context) (int, error) {
	return db.Count(ctx, s.db)
}

func (s *SQL) Close() error {
	return s.db.Close()
}
