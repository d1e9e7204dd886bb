package filter

import (
	"github.com/hpungsan/sift/internal/analysis"
)

type predicate func(p *analysis.Properties) bool

// compile turns the recognized keys of spec into predicates. Keys whose
// values cannot be read are returned in skipped and impose no constraint.
func compile(spec Spec) (preds []predicate, skipped []string) {
	if v, ok := spec[KeyIsPalindrome]; ok {
		want := stringForm(v) == "true"
		preds = append(preds, func(p *analysis.Properties) bool {
			return p.IsPalindrome == want
		})
	}

	if v, ok := spec[KeyMinLength]; ok {
		if minLen, ok := parseLeadingInt(stringForm(v)); ok {
			preds = append(preds, func(p *analysis.Properties) bool {
				return p.Length >= minLen
			})
		} else {
			skipped = append(skipped, KeyMinLength)
		}
	}

	if v, ok := spec[KeyMaxLength]; ok {
		if maxLen, ok := parseLeadingInt(stringForm(v)); ok {
			preds = append(preds, func(p *analysis.Properties) bool {
				return p.Length <= maxLen
			})
		} else {
			skipped = append(skipped, KeyMaxLength)
		}
	}

	if v, ok := spec[KeyWordCount]; ok {
		if count, ok := parseLeadingInt(stringForm(v)); ok {
			preds = append(preds, func(p *analysis.Properties) bool {
				return p.WordCount == count
			})
		} else {
			skipped = append(skipped, KeyWordCount)
		}
	}

	if v, ok := spec[KeyContainsCharacter]; ok {
		// Case-sensitive on purpose: the frequency map is built from the raw string.
		if char, ok := v.(string); ok {
			preds = append(preds, func(p *analysis.Properties) bool {
				return p.CharacterFrequencyMap[char] > 0
			})
		} else {
			skipped = append(skipped, KeyContainsCharacter)
		}
	}

	return preds, skipped
}

// Apply returns the records satisfying every predicate in spec, in input
// order. It never fails: unknown keys are ignored and malformed values drop
// their predicate. The input slice is not modified.
func Apply(records []analysis.Record, spec Spec) []analysis.Record {
	preds, _ := compile(spec)

	result := make([]analysis.Record, 0, len(records))
	for i := range records {
		if matches(&records[i].Properties, preds) {
			result = append(result, records[i])
		}
	}
	return result
}

// Skipped lists the recognized predicates in spec that Apply will not
// enforce because their values are malformed.
func Skipped(spec Spec) []string {
	_, skipped := compile(spec)
	return skipped
}

func matches(p *analysis.Properties, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}
