package localstore

import (
	"context"
	"testing"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signIn(t *testing.T, store *Store, userID string) {
	t.Helper()

	user := &entity.User{ID: userID, Name: "Test User", Email: userID + "@test.com", Role: entity.RoleUser}
	require.NoError(t, store.SaveSession(context.Background(), "tok-"+userID, user))
}

func TestCartGateway_RequiresSession(t *testing.T) {
	ctx := context.Background()
	gw := NewCartGateway(newTestStore(t), NewCatalog(), 0)

	_, err := gw.GetCart(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = gw.AddToCart(ctx, "1")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestCartGateway_AddMergesAndRecomputesTotal(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	signIn(t, store, "u1")
	gw := NewCartGateway(store, NewCatalog(), 0)

	cart, err := gw.AddToCart(ctx, "1") // Chicken Biryani, 299
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, float64(299), cart.TotalAmount)

	cart, err = gw.AddToCart(ctx, "1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, float64(598), cart.TotalAmount)

	cart, err = gw.AddToCart(ctx, "12") // Fresh Lime Soda, 79
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, float64(677), cart.TotalAmount)
}

func TestCartGateway_AddUnknownFood(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	signIn(t, store, "u1")
	gw := NewCartGateway(store, NewCatalog(), 0)

	_, err := gw.AddToCart(ctx, "no-such-food")
	assert.True(t, errors.Is(err, domainerrors.ErrFoodNotFound))
}

func TestCartGateway_RemoveDecrementsThenDeletes(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	signIn(t, store, "u1")
	gw := NewCartGateway(store, NewCatalog(), 0)

	// Add food id "1" twice, then remove it once: one line, quantity 1, 299.
	_, err := gw.AddToCart(ctx, "1")
	require.NoError(t, err)
	_, err = gw.AddToCart(ctx, "1")
	require.NoError(t, err)

	cart, err := gw.RemoveFromCart(ctx, "1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, float64(299), cart.TotalAmount)

	cart, err = gw.RemoveFromCart(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalAmount)
}

func TestCartGateway_RemoveAbsentLine(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	signIn(t, store, "u1")
	gw := NewCartGateway(store, NewCatalog(), 0)

	_, err := gw.RemoveFromCart(ctx, "1")
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartGateway_ClearPersistsEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	signIn(t, store, "u1")
	gw := NewCartGateway(store, NewCatalog(), 0)

	_, err := gw.AddToCart(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, gw.ClearCart(ctx))

	cart, err := gw.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalAmount)
}
