package ops

import (
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/logger"
	"github.com/hpungsan/sift/internal/metrics"
)

// Metric labels for filter calls.
const (
	sourceList  = "list"
	sourceQuery = "query"
)

// reportSkipped surfaces predicates that Apply ignored because their values
// were malformed. Results are unaffected.
func reportSkipped(source string, spec filter.Spec) {
	for _, key := range filter.Skipped(spec) {
		metrics.SkippedPredicates.WithLabelValues(key).Inc()
		logger.Logger.Debugw("filter predicate skipped",
			"source", source,
			"predicate", key,
			"value", spec[key],
		)
	}
}
