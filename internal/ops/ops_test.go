package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/sift/internal/analysis"
	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/store"
)

func stringPtr(s string) *string {
	return &s
}

// seed stores values in order and returns the store.
func seed(t *testing.T, values ...string) store.Store {
	t.Helper()
	st := store.NewMemory()
	for _, v := range values {
		_, err := Create(context.Background(), st, config.DefaultConfig(), CreateInput{Value: stringPtr(v)})
		require.NoError(t, err)
	}
	return st
}

func valuesOf(records []analysis.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Value
	}
	return out
}
