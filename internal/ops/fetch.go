package ops

import (
	"context"

	"github.com/hpungsan/sift/internal/analysis"
	"github.com/hpungsan/sift/internal/store"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	Value string
}

// Fetch retrieves a stored string by its exact value.
func Fetch(ctx context.Context, st store.Store, input FetchInput) (*analysis.Record, error) {
	return st.Get(ctx, input.Value)
}
