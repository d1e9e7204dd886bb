package filter

import (
	"math"
	"regexp"
	"strings"
)

var (
	longerThanRegex  = regexp.MustCompile(`longer than (\d+)`)
	letterRegex      = regexp.MustCompile(`containing the letter ([a-z])`)
	looseLetterRegex = regexp.MustCompile(`containing ([a-z])`)
)

// detector inspects a lowercased query and reports the value for its
// predicate. It sees the spec built so far so a rule can defer to earlier ones.
type detector func(query string, current Spec) (any, bool)

type rule struct {
	key    string
	detect detector
}

// rules run in order against every query; each may fire independently and a
// later rule overwrites an earlier one on the same key.
var rules = []rule{
	{KeyIsPalindrome, func(q string, _ Spec) (any, bool) {
		return true, strings.Contains(q, "palindromic") || strings.Contains(q, "palindrome")
	}},
	{KeyWordCount, func(q string, _ Spec) (any, bool) {
		return 1, strings.Contains(q, "single word")
	}},
	{KeyMinLength, func(q string, _ Spec) (any, bool) {
		m := longerThanRegex.FindStringSubmatch(q)
		if m == nil {
			return nil, false
		}
		n, _ := parseLeadingInt(m[1])
		if n < math.MaxInt {
			n++
		}
		return n, true
	}},
	{KeyContainsCharacter, func(q string, _ Spec) (any, bool) {
		return "a", strings.Contains(q, "first vowel")
	}},
	{KeyContainsCharacter, func(q string, _ Spec) (any, bool) {
		return submatch(letterRegex, q)
	}},
	{KeyContainsCharacter, func(q string, current Spec) (any, bool) {
		if _, set := current[KeyContainsCharacter]; set {
			return nil, false
		}
		return submatch(looseLetterRegex, q)
	}},
}

// Interpret maps a free-text query onto a Spec. Matching is case-insensitive.
// An empty result means no rule recognized the query; callers must treat
// that as a failure, not as "match everything".
func Interpret(query string) Spec {
	q := strings.ToLower(query)
	spec := Spec{}
	for _, r := range rules {
		if v, ok := r.detect(q, spec); ok {
			spec[r.key] = v
		}
	}
	return spec
}

func submatch(re *regexp.Regexp, q string) (any, bool) {
	m := re.FindStringSubmatch(q)
	if m == nil {
		return nil, false
	}
	return m[1], true
}
