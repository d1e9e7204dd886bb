// Package filter translates natural-language queries into predicate sets and
// applies predicate sets to analyzed strings.
package filter

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Predicate names understood by Apply.
const (
	KeyIsPalindrome      = "is_palindrome"
	KeyMinLength         = "min_length"
	KeyMaxLength         = "max_length"
	KeyWordCount         = "word_count"
	KeyContainsCharacter = "contains_character"
)

// Keys lists the predicate names in evaluation order.
var Keys = []string{
	KeyIsPalindrome,
	KeyMinLength,
	KeyMaxLength,
	KeyWordCount,
	KeyContainsCharacter,
}

// Spec is a set of named predicates. A missing key means no constraint.
// Values stay loosely typed because callers pass raw query parameters and
// decoded JSON straight through; Apply decides per predicate how to read them.
type Spec map[string]any

// IsEmpty reports whether the spec carries no predicates at all.
func (s Spec) IsEmpty() bool {
	return len(s) == 0
}

// FromValues builds a Spec from URL query parameters. A key given once maps to
// its string; a repeated key maps to a []string. Unknown keys are kept so they
// can be echoed back, and Apply ignores them.
func FromValues(values url.Values) Spec {
	spec := make(Spec, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			continue
		case 1:
			spec[key] = vals[0]
		default:
			spec[key] = append([]string(nil), vals...)
		}
	}
	return spec
}

// stringForm renders v the way a loosely typed caller would print it:
// lists are comma-joined, nil is "null".
func stringForm(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return formatNumber(t)
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = stringForm(e)
		}
		return strings.Join(parts, ",")
	default:
		return "[object]"
	}
}

// formatNumber prints f in plain decimal, switching to exponent form at
// magnitudes of 1e21 and above or below 1e-6, so 1e21 reads as "1e+21".
func formatNumber(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseLeadingInt reads an optionally signed decimal integer from the start
// of s, after leading whitespace. Anything after the digits is ignored, so
// "12abc" is 12 and "5.7" is 5. Values past the int range saturate.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil {
		n = math.MaxInt
	}
	if neg {
		return -int(n), true
	}
	return int(n), true
}
