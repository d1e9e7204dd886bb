package ops

import (
	"context"

	"github.com/hpungsan/sift/internal/logger"
	"github.com/hpungsan/sift/internal/metrics"
	"github.com/hpungsan/sift/internal/store"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	Value string
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// Delete removes a stored string by its exact value.
func Delete(ctx context.Context, st store.Store, input DeleteInput) (*DeleteOutput, error) {
	rec, err := st.Get(ctx, input.Value)
	if err != nil {
		return nil, err
	}
	if err := st.Delete(ctx, input.Value); err != nil {
		return nil, err
	}

	metrics.StoredStrings.Dec()
	logger.Logger.Debugw("string deleted", "id", rec.ID)

	return &DeleteOutput{Deleted: true, ID: rec.ID}, nil
}
