package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/store"
)

func TestAddIsIdempotent(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()

	item := models.WishlistItem{ID: "p1", Name: "Night Cream", Price: 19.99}
	require.NoError(t, svc.Add(ctx, item))
	require.NoError(t, svc.Add(ctx, item))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestContains(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, models.WishlistItem{ID: "p1", Name: "Toner", Price: 8}))

	ok, err := svc.Contains(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Contains(ctx, "p2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveAndClear(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, models.WishlistItem{ID: "p1", Name: "Toner", Price: 8}))
	require.NoError(t, svc.Add(ctx, models.WishlistItem{ID: "p2", Name: "Mask", Price: 12}))

	require.NoError(t, svc.Remove(ctx, "p1"))
	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)

	require.NoError(t, svc.Clear(ctx))
	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddValidation(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Add(ctx, models.WishlistItem{ID: "", Name: "No ID"}), ErrInvalidItem)
	assert.ErrorIs(t, svc.Add(ctx, models.WishlistItem{ID: "p1", Name: "Bad", Price: -0.5}), ErrInvalidItem)
}
