package ops

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/hpungsan/sift/internal/analysis"
	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/logger"
	"github.com/hpungsan/sift/internal/metrics"
	"github.com/hpungsan/sift/internal/store"
)

// CreateInput contains parameters for the Create operation.
type CreateInput struct {
	Value *string // required, non-empty, valid UTF-8
}

// Create analyzes a new string and stores it.
func Create(ctx context.Context, st store.Store, cfg *config.Config, input CreateInput) (*analysis.Record, error) {
	if input.Value == nil || *input.Value == "" {
		return nil, errors.NewInvalidRequest("value is required")
	}
	value := *input.Value
	if !utf8.ValidString(value) {
		return nil, errors.NewInvalidRequest("value must be valid UTF-8")
	}

	if cfg != nil && cfg.MaxValueChars > 0 {
		if n := utf8.RuneCountInString(value); n > cfg.MaxValueChars {
			return nil, errors.NewValueTooLarge(cfg.MaxValueChars, n)
		}
	}

	rec := analysis.NewRecord(value, time.Now())
	if err := st.Insert(ctx, rec); err != nil {
		return nil, err
	}

	metrics.StoredStrings.Inc()
	logger.Logger.Debugw("string stored", "id", rec.ID, "length", rec.Properties.Length)

	return &rec, nil
}
