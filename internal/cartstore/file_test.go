package cartstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cubtton/storefront/internal/cartstore"
	"github.com/cubtton/storefront/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := cartstore.NewFileStore(t.TempDir())

	lines := []domain.CartLine{
		{ProductID: "1", Price: "$9.99", Quantity: 2, Meta: domain.LineMeta{Title: "Cushion", Category: "Living", ImageURL: "https://img.example/c.jpg"}},
		{ProductID: "2", Price: "5.00", Quantity: 1},
	}

	require.NoError(t, store.Save(ctx, lines))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(lines, got))
}

func TestFileStoreMissingFile(t *testing.T) {
	store := cartstore.NewFileStore(t.TempDir())

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := cartstore.NewFileStore(dir)

	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Load(context.Background())
	require.Error(t, err)
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := cartstore.NewFileStore(t.TempDir())

	require.NoError(t, store.Save(ctx, []domain.CartLine{{ProductID: "1", Quantity: 3}}))
	require.NoError(t, store.Save(ctx, []domain.CartLine{{ProductID: "2", Quantity: 1}}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ProductID)

	// empty snapshot persists as empty, not as the previous content
	require.NoError(t, store.Save(ctx, nil))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	store := cartstore.NewFileStore(dir)

	require.NoError(t, store.Save(context.Background(), []domain.CartLine{{ProductID: "1", Quantity: 1}}))

	_, err := os.Stat(store.Path())
	require.NoError(t, err)
}
