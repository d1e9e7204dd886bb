package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"

	"github.com/hpungsan/sift/internal/analysis"
	siftErrors "github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/logger"
)

// Key layout:
//
//	v/<hash>      -> record JSON
//	o/<hash>      -> 8-byte big-endian insertion sequence
//	s/<sequence>  -> hash
//
// hash is the hex SHA-256 of the value, so key size stays fixed however long
// the value is. Iterating the s/ prefix yields records in insertion order.
var (
	prefixValue = []byte("v/")
	prefixOrder = []byte("o/")
	prefixSeq   = []byte("s/")
	seqKey      = []byte("meta/seq")
)

// Badger is a Store persisted in an embedded BadgerDB directory.
type Badger struct {
	db  *badger.DB
	seq *badger.Sequence
}

// badgerLogger adapts the global zap logger to badger.Logger.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...any)   { logger.Logger.Errorf(format, args...) }
func (badgerLogger) Warningf(format string, args ...any) { logger.Logger.Warnf(format, args...) }
func (badgerLogger) Infof(format string, args ...any)    { logger.Logger.Debugf(format, args...) }
func (badgerLogger) Debugf(format string, args ...any)   { logger.Logger.Debugf(format, args...) }

// OpenBadger opens baseDir/badger. An empty baseDir opens an in-memory
// instance.
func OpenBadger(baseDir string) (*Badger, error) {
	var opts badger.Options
	if baseDir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(filepath.Join(baseDir, "badger"))
	}
	opts = opts.WithNumVersionsToKeep(1).WithLogger(badgerLogger{})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger database")
	}

	seq, err := db.GetSequence(seqKey, 100)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "acquire badger sequence")
	}

	return &Badger{db: db, seq: seq}, nil
}

func key(prefix []byte, rest []byte) []byte {
	k := make([]byte, 0, len(prefix)+len(rest))
	return append(append(k, prefix...), rest...)
}

// valueKey returns the fixed-size key component for value.
func valueKey(value string) []byte {
	return []byte(analysis.Hash(value))
}

func seqBytes(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

func (b *Badger) Insert(ctx context.Context, rec analysis.Record) error {
	if err := ctx.Err(); err != nil {
		return siftErrors.NewCancelled("insert")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return siftErrors.NewInternal(errors.Wrap(err, "marshal record"))
	}

	n, err := b.seq.Next()
	if err != nil {
		return siftErrors.NewInternal(errors.Wrap(err, "next sequence"))
	}
	order := seqBytes(n)
	value := valueKey(rec.Value)

	err = b.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key(prefixValue, value))
		if err == nil {
			return siftErrors.NewAlreadyExists(rec.Value)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := txn.Set(key(prefixValue, value), data); err != nil {
			return err
		}
		if err := txn.Set(key(prefixOrder, value), order); err != nil {
			return err
		}
		return txn.Set(key(prefixSeq, order), value)
	})
	if errors.Is(err, badger.ErrConflict) {
		// A concurrent insert of the same value committed first.
		return siftErrors.NewAlreadyExists(rec.Value)
	}
	return wrapBadger(err, "insert string")
}

func (b *Badger) Get(ctx context.Context, value string) (*analysis.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, siftErrors.NewCancelled("get")
	}

	var rec analysis.Record
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(prefixValue, valueKey(value)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return siftErrors.NewNotFound(value)
		}
		if err != nil {
			return err
		}
		return item.Value(func(data []byte) error {
			return json.Unmarshal(data, &rec)
		})
	})
	if err != nil {
		return nil, wrapBadger(err, "get string")
	}
	return &rec, nil
}

func (b *Badger) Delete(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return siftErrors.NewCancelled("delete")
	}

	v := valueKey(value)
	err := b.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key(prefixOrder, v))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return siftErrors.NewNotFound(value)
		}
		if err != nil {
			return err
		}
		order, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}

		if err := txn.Delete(key(prefixSeq, order)); err != nil {
			return err
		}
		if err := txn.Delete(key(prefixOrder, v)); err != nil {
			return err
		}
		return txn.Delete(key(prefixValue, v))
	})
	return wrapBadger(err, "delete string")
}

func (b *Badger) Snapshot(ctx context.Context) ([]analysis.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, siftErrors.NewCancelled("snapshot")
	}

	records := make([]analysis.Record, 0)
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefixSeq); it.ValidForPrefix(prefixSeq); it.Next() {
			hash, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			item, err := txn.Get(key(prefixValue, hash))
			if err != nil {
				return errors.Wrapf(err, "record %s", hash)
			}

			var rec analysis.Record
			if err := item.Value(func(data []byte) error {
				return json.Unmarshal(data, &rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, wrapBadger(err, "list strings")
	}
	return records, nil
}

func (b *Badger) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, siftErrors.NewCancelled("count")
	}

	n := 0
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefixSeq); it.ValidForPrefix(prefixSeq); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, wrapBadger(err, "count strings")
	}
	return n, nil
}

// Close releases the sequence lease and closes the database.
func (b *Badger) Close() error {
	seqErr := b.seq.Release()
	if err := b.db.Close(); err != nil {
		return err
	}
	return seqErr
}

// wrapBadger passes SiftErrors through and turns anything else into INTERNAL.
func wrapBadger(err error, op string) error {
	if err == nil {
		return nil
	}
	var sErr *siftErrors.SiftError
	if errors.As(err, &sErr) {
		return sErr
	}
	return siftErrors.NewInternal(errors.Wrap(err, op))
}
