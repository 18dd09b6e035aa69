package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
)

func cartWith(items ...entity.CartItem) *entity.Cart {
	cart := &entity.Cart{ID: "cart_user_1", UserID: "user_1", Items: items}
	for _, item := range items {
		cart.TotalAmount += item.Price * float64(item.Quantity)
	}

	return cart
}

func TestCartService_GetCartCachesResult(t *testing.T) {
	calls := 0
	remote := &fakeCartGateway{
		getFn: func(context.Context) (*entity.Cart, error) {
			calls++
			return cartWith(entity.CartItem{FoodID: "1", Price: 299, Quantity: 1}), nil
		},
	}

	svc := NewCartService(testConfig(), remote, &fakeCartGateway{}, newQueryCache(), &recorderNotifier{}, testLogger())

	for i := 0; i < 2; i++ {
		cart, err := svc.GetCart(context.Background())
		require.NoError(t, err)
		assert.Equal(t, float64(299), cart.TotalAmount)
	}

	assert.Equal(t, 1, calls)
}

func TestCartService_AddToCartEvictsCachedCart(t *testing.T) {
	remote := &fakeCartGateway{
		getFn: func(context.Context) (*entity.Cart, error) { return cartWith(), nil },
		addFn: func(_ context.Context, foodID string) (*entity.Cart, error) {
			return cartWith(entity.CartItem{FoodID: foodID, Price: 299, Quantity: 1}), nil
		},
	}
	queries := newQueryCache()
	notifier := &recorderNotifier{}

	svc := NewCartService(testConfig(), remote, &fakeCartGateway{}, queries, notifier, testLogger())

	_, err := svc.GetCart(context.Background())
	require.NoError(t, err)
	_, cached := queries.Get(cacheKeyCart)
	require.True(t, cached)

	cart, err := svc.AddToCart(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	_, cached = queries.Get(cacheKeyCart)
	assert.False(t, cached)
	assert.Equal(t, []string{"Item added to cart!"}, notifier.successes)
}

func TestCartService_AddToCartFallsBackWhenBackendDown(t *testing.T) {
	remote := &fakeCartGateway{
		addFn: func(context.Context, string) (*entity.Cart, error) { return nil, errBackendDown() },
	}
	local := &fakeCartGateway{
		addFn: func(_ context.Context, foodID string) (*entity.Cart, error) {
			return cartWith(entity.CartItem{FoodID: foodID, Price: 299, Quantity: 1}), nil
		},
	}

	svc := NewCartService(testConfig(), remote, local, newQueryCache(), &recorderNotifier{}, testLogger())

	cart, err := svc.AddToCart(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", cart.Items[0].FoodID)
}

func TestCartService_RemoveMissingItemPropagates(t *testing.T) {
	remote := &fakeCartGateway{
		removeFn: func(context.Context, string) (*entity.Cart, error) {
			return nil, domainerrors.ErrCartItemNotFound
		},
	}
	notifier := &recorderNotifier{}

	svc := NewCartService(testConfig(), remote, &fakeCartGateway{}, newQueryCache(), notifier, testLogger())

	_, err := svc.RemoveFromCart(context.Background(), "99")
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	assert.Equal(t, []string{"Item not found in cart"}, notifier.failures)
}

func TestCartService_ClearCartEvictsAndNotifies(t *testing.T) {
	remote := &fakeCartGateway{
		clearFn: func(context.Context) error { return nil },
	}
	queries := newQueryCache()
	notifier := &recorderNotifier{}

	svc := NewCartService(testConfig(), remote, &fakeCartGateway{}, queries, notifier, testLogger())

	require.NoError(t, svc.ClearCart(context.Background()))
	assert.Equal(t, []string{"Cart cleared!"}, notifier.successes)
}
