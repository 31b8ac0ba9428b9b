package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountDefaultsToZero(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "likes.json"))
	require.NoError(t, err)

	n, err := store.Count(context.Background(), "agua_mineral")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestIncrementAdvancesAndReturnsNewCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "likes.json"))
	require.NoError(t, err)

	for i := int64(1); i <= 5; i++ {
		n, err := store.Increment(ctx, "agua_mineral")
		require.NoError(t, err)
		require.Equal(t, i, n)
	}

	n, err := store.Count(ctx, "agua_mineral")
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
}

// Simulated restart: a fresh Open on the same file must see every increment.
func TestCountsSurviveReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "likes.json")

	store, err := Open(path)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := store.Increment(ctx, "milanesa")
		require.NoError(t, err)
	}
	_, err = store.Increment(ctx, "flan")
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)

	n, err := reopened.Count(ctx, "milanesa")
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	n, err = reopened.Count(ctx, "flan")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestInvalidInput(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "likes.json"))
	require.NoError(t, err)

	_, err = store.Count(context.Background(), "  ")
	require.Error(t, err)
	_, err = store.Increment(context.Background(), "")
	require.Error(t, err)
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "likes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
}
