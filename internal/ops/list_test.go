package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/sift/internal/filter"
)

func TestList(t *testing.T) {
	st := seed(t, "racecar", "hello", "Hello World", "noon")

	tests := []struct {
		name    string
		filters filter.Spec
		want    []string
	}{
		{name: "no filters", filters: nil, want: []string{"racecar", "hello", "Hello World", "noon"}},
		{name: "palindromes", filters: filter.Spec{"is_palindrome": "true"}, want: []string{"racecar", "noon"}},
		{name: "two words", filters: filter.Spec{"word_count": "2"}, want: []string{"Hello World"}},
		{name: "malformed ignored", filters: filter.Spec{"min_length": "abc"}, want: []string{"racecar", "hello", "Hello World", "noon"}},
		{name: "nothing matches", filters: filter.Spec{"contains_character": "z"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := List(context.Background(), st, ListInput{Filters: tt.filters})
			require.NoError(t, err)
			require.Equal(t, tt.want, valuesOf(out.Data))
			require.Equal(t, len(tt.want), out.Count)
			require.NotNil(t, out.FiltersApplied)
		})
	}
}

func TestList_EchoesUnknownFilters(t *testing.T) {
	st := seed(t, "hello")

	filters := filter.Spec{"sort": "asc", "min_length": "2"}
	out, err := List(context.Background(), st, ListInput{Filters: filters})
	require.NoError(t, err)
	require.Equal(t, filters, out.FiltersApplied)
	require.Equal(t, 1, out.Count)
}
