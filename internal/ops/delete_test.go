package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/sift/internal/errors"
)

func TestDelete(t *testing.T) {
	ctx := context.Background()
	st := seed(t, "racecar", "hello")

	out, err := Delete(ctx, st, DeleteInput{Value: "racecar"})
	require.NoError(t, err)
	require.True(t, out.Deleted)
	require.NotEmpty(t, out.ID)

	_, err = Fetch(ctx, st, FetchInput{Value: "racecar"})
	require.True(t, errors.Is(err, errors.ErrNotFound))

	_, err = Delete(ctx, st, DeleteInput{Value: "racecar"})
	require.True(t, errors.Is(err, errors.ErrNotFound), "got %v", err)

	n, err := st.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
