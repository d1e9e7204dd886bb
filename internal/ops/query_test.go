package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/filter"
)

func TestQuery(t *testing.T) {
	st := seed(t, "racecar", "hello", "A man a plan a canal Panama", "noon", "banana split")

	tests := []struct {
		query string
		spec  filter.Spec
		want  []string
	}{
		{
			query: "all single word palindromic strings",
			spec:  filter.Spec{"is_palindrome": true, "word_count": 1},
			want:  []string{"racecar", "noon"},
		},
		{
			query: "strings longer than 10 characters",
			spec:  filter.Spec{"min_length": 11},
			want:  []string{"A man a plan a canal Panama", "banana split"},
		},
		{
			query: "palindromic strings that contain the first vowel",
			spec:  filter.Spec{"is_palindrome": true, "contains_character": "a"},
			want:  []string{"racecar", "A man a plan a canal Panama"},
		},
		{
			query: "strings containing the letter z",
			spec:  filter.Spec{"contains_character": "z"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			out, err := Query(context.Background(), st, QueryInput{Query: tt.query})
			require.NoError(t, err)
			require.Equal(t, tt.query, out.InterpretedQuery.Original)
			require.Equal(t, tt.spec, out.InterpretedQuery.ParsedFilters)
			require.Equal(t, tt.want, valuesOf(out.Data))
			require.Equal(t, len(tt.want), out.Count)
		})
	}
}

func TestQuery_Errors(t *testing.T) {
	st := seed(t, "hello")

	_, err := Query(context.Background(), st, QueryInput{Query: ""})
	require.True(t, errors.Is(err, errors.ErrInvalidRequest), "got %v", err)

	_, err = Query(context.Background(), st, QueryInput{Query: "show me everything"})
	require.True(t, errors.Is(err, errors.ErrUnparseableQuery), "got %v", err)
}
