package ops

import (
	"context"
	"strings"

	"github.com/hpungsan/sift/internal/analysis"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/metrics"
	"github.com/hpungsan/sift/internal/store"
)

// QueryInput contains parameters for the Query operation.
type QueryInput struct {
	Query string // required
}

// InterpretedQuery echoes the query and the filters derived from it.
type InterpretedQuery struct {
	Original      string      `json:"original"`
	ParsedFilters filter.Spec `json:"parsed_filters"`
}

// QueryOutput contains the result of the Query operation.
type QueryOutput struct {
	Data             []analysis.Record `json:"data"`
	Count            int               `json:"count"`
	InterpretedQuery InterpretedQuery  `json:"interpreted_query"`
}

// Query interprets a natural-language query and returns the matching strings.
func Query(ctx context.Context, st store.Store, input QueryInput) (*QueryOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}

	spec := filter.Interpret(input.Query)
	if spec.IsEmpty() {
		return nil, errors.NewUnparseableQuery(input.Query)
	}

	records, err := st.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	reportSkipped(sourceQuery, spec)
	data := filter.Apply(records, spec)
	metrics.FilterResults.WithLabelValues(sourceQuery).Observe(float64(len(data)))

	return &QueryOutput{
		Data:  data,
		Count: len(data),
		InterpretedQuery: InterpretedQuery{
			Original:      input.Query,
			ParsedFilters: spec,
		},
	}, nil
}
