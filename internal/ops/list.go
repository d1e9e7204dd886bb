package ops

import (
	"context"

	"github.com/hpungsan/sift/internal/analysis"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/metrics"
	"github.com/hpungsan/sift/internal/store"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Filters filter.Spec
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Data           []analysis.Record `json:"data"`
	Count          int               `json:"count"`
	FiltersApplied filter.Spec       `json:"filters_applied"`
}

// List returns every stored string matching the given filters, in insertion order.
func List(ctx context.Context, st store.Store, input ListInput) (*ListOutput, error) {
	records, err := st.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	spec := input.Filters
	if spec == nil {
		spec = filter.Spec{}
	}

	reportSkipped(sourceList, spec)
	data := filter.Apply(records, spec)
	metrics.FilterResults.WithLabelValues(sourceList).Observe(float64(len(data)))

	return &ListOutput{
		Data:           data,
		Count:          len(data),
		FiltersApplied: spec,
	}, nil
}
