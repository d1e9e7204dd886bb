package store

import (
	"context"
	"sync"

	"github.com/hpungsan/sift/internal/analysis"
	"github.com/hpungsan/sift/internal/errors"
)

// Memory is an in-process Store. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	byValue map[string]analysis.Record
	order   []string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{byValue: make(map[string]analysis.Record)}
}

func (m *Memory) Insert(ctx context.Context, rec analysis.Record) error {
	if err := ctx.Err(); err != nil {
		return errors.NewCancelled("insert")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byValue[rec.Value]; ok {
		return errors.NewAlreadyExists(rec.Value)
	}
	m.byValue[rec.Value] = rec
	m.order = append(m.order, rec.Value)
	return nil
}

func (m *Memory) Get(ctx context.Context, value string) (*analysis.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewCancelled("get")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byValue[value]
	if !ok {
		return nil, errors.NewNotFound(value)
	}
	return &rec, nil
}

func (m *Memory) Delete(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewCancelled("delete")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byValue[value]; !ok {
		return errors.NewNotFound(value)
	}
	delete(m.byValue, value)
	for i, v := range m.order {
		if v == value {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) Snapshot(ctx context.Context) ([]analysis.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewCancelled("snapshot")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]analysis.Record, 0, len(m.order))
	for _, v := range m.order {
		records = append(records, m.byValue[v])
	}
	return records, nil
}

func (m *Memory) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.NewCancelled("count")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order), nil
}

// Close is a no-op; records are dropped with the store.
func (m *Memory) Close() error {
	return nil
}
