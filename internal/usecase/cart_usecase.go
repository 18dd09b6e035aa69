package usecase

import (
	"context"

	"foodies/internal/domain/entity"
)

// CartUsecase covers the cart of the authenticated user.
type CartUsecase interface {
	// GetCart returns the current cart, served from cache while fresh.
	GetCart(ctx context.Context) (*entity.Cart, error)

	// AddToCart adds one unit of a food item and evicts cached cart reads.
	AddToCart(ctx context.Context, foodID string) (*entity.Cart, error)

	// RemoveFromCart removes one unit of a food item and evicts cached
	// cart reads.
	RemoveFromCart(ctx context.Context, foodID string) (*entity.Cart, error)

	// ClearCart empties the cart and evicts cached cart reads.
	ClearCart(ctx context.Context) error
}
