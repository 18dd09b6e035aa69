package localstore

import (
	"context"
	"time"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"
)

type cartGateway struct {
	store   *Store
	catalog *Catalog
	latency time.Duration
}

// NewCartGateway returns the local substitute for the cart endpoints. All
// operations act on the cart of the persisted session user.
func NewCartGateway(store *Store, catalog *Catalog, latency time.Duration) service.CartGateway {
	return &cartGateway{store: store, catalog: catalog, latency: latency}
}

func (g *cartGateway) GetCart(ctx context.Context) (*entity.Cart, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	user, err := requireSession(ctx, g.store)
	if err != nil {
		return nil, err
	}

	return g.store.Cart(ctx, user.ID)
}

func (g *cartGateway) AddToCart(ctx context.Context, foodID string) (*entity.Cart, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	user, err := requireSession(ctx, g.store)
	if err != nil {
		return nil, err
	}

	food := g.catalog.Find(foodID)
	if food == nil {
		return nil, domainerrors.ErrFoodNotFound
	}

	cart, err := g.store.Cart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(food)
	if err := g.store.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (g *cartGateway) RemoveFromCart(ctx context.Context, foodID string) (*entity.Cart, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	user, err := requireSession(ctx, g.store)
	if err != nil {
		return nil, err
	}

	cart, err := g.store.Cart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(foodID) {
		return nil, domainerrors.ErrCartItemNotFound
	}

	if err := g.store.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (g *cartGateway) ClearCart(ctx context.Context) error {
	if err := delay(ctx, g.latency); err != nil {
		return err
	}

	user, err := requireSession(ctx, g.store)
	if err != nil {
		return err
	}

	cart := entity.NewCart(user.ID)

	return g.store.SaveCart(ctx, cart)
}
