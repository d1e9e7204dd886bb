package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/hpungsan/sift/internal/analysis"
	siftErrors "github.com/hpungsan/sift/internal/errors"
)

const selectColumns = `id, value, properties_json, created_at`

// Insert stores a new record. Returns ALREADY_EXISTS if the value is present.
func Insert(ctx context.Context, db *sql.DB, rec analysis.Record) error {
	props, err := json.Marshal(rec.Properties)
	if err != nil {
		return siftErrors.NewInternal(errors.Wrap(err, "marshal properties"))
	}

	query := `
		INSERT INTO strings (id, value, properties_json, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err = db.ExecContext(ctx, query, rec.ID, rec.Value, string(props), rec.CreatedAt.UnixNano())
	if err != nil {
		if isUniqueConstraintError(err) {
			return siftErrors.NewAlreadyExists(rec.Value)
		}
		return siftErrors.NewInternal(errors.Wrap(err, "insert string"))
	}

	return nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite returns "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GetByValue retrieves the record for value.
func GetByValue(ctx context.Context, db *sql.DB, value string) (*analysis.Record, error) {
	row := db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM strings WHERE value = ?`, value)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, siftErrors.NewNotFound(value)
	}
	if err != nil {
		return nil, siftErrors.NewInternal(errors.Wrap(err, "get string"))
	}
	return rec, nil
}

// DeleteByValue removes the record for value.
func DeleteByValue(ctx context.Context, db *sql.DB, value string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM strings WHERE value = ?`, value)
	if err != nil {
		return siftErrors.NewInternal(errors.Wrap(err, "delete string"))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return siftErrors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return siftErrors.NewNotFound(value)
	}

	return nil
}

// ListAll returns every record in insertion order.
func ListAll(ctx context.Context, db *sql.DB) ([]analysis.Record, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+selectColumns+` FROM strings ORDER BY seq ASC`)
	if err != nil {
		return nil, siftErrors.NewInternal(errors.Wrap(err, "list strings"))
	}
	defer rows.Close()

	records := make([]analysis.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, siftErrors.NewInternal(errors.Wrap(err, "scan string"))
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, siftErrors.NewInternal(err)
	}

	return records, nil
}

// Count returns the number of stored records.
func Count(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM strings`).Scan(&n); err != nil {
		return 0, siftErrors.NewInternal(errors.Wrap(err, "count strings"))
	}
	return n, nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord scans a single row into a Record.
func scanRecord(row scanner) (*analysis.Record, error) {
	var (
		rec       analysis.Record
		propsJSON string
		createdAt int64
	)

	if err := row.Scan(&rec.ID, &rec.Value, &propsJSON, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(propsJSON), &rec.Properties); err != nil {
		return nil, errors.Wrap(err, "unmarshal properties")
	}
	rec.CreatedAt = time.Unix(0, createdAt).UTC()

	return &rec, nil
}
