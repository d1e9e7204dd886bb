package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/sift/internal/errors"
)

func TestFetch(t *testing.T) {
	st := seed(t, "racecar")

	rec, err := Fetch(context.Background(), st, FetchInput{Value: "racecar"})
	require.NoError(t, err)
	require.Equal(t, "racecar", rec.Value)

	_, err = Fetch(context.Background(), st, FetchInput{Value: "Racecar"})
	require.True(t, errors.Is(err, errors.ErrNotFound), "got %v", err)
}
