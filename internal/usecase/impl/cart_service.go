package impl

import (
	"context"
	"log/slog"
	"time"

	"foodies/config"
	"foodies/internal/domain/entity"
	"foodies/internal/domain/service"
	"foodies/internal/infra/cache"
	"foodies/internal/usecase"
)

type cartService struct {
	remote   service.CartGateway
	local    service.CartGateway
	queries  *cache.QueryCache
	notifier service.Notifier
	logger   *slog.Logger
	ttl      time.Duration
}

// NewCartService creates the cart usecase over the remote gateway and its
// local substitute.
func NewCartService(cfg *config.Config, remote, local service.CartGateway, queries *cache.QueryCache, notifier service.Notifier, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		remote:   remote,
		local:    local,
		queries:  queries,
		notifier: notifier,
		logger:   logger,
		ttl:      cfg.Cache.CartTTL,
	}
}

// GetCart returns the current cart, served from cache while fresh.
func (s *cartService) GetCart(ctx context.Context) (*entity.Cart, error) {
	return cachedRead(ctx, s.queries, cacheKeyCart, s.ttl, func(ctx context.Context) (*entity.Cart, error) {
		return fallback(ctx, s.logger, "cart.get",
			s.remote.GetCart,
			s.local.GetCart,
		)
	})
}

// AddToCart adds one unit of a food item and evicts cached cart reads.
func (s *cartService) AddToCart(ctx context.Context, foodID string) (*entity.Cart, error) {
	cart, err := fallback(ctx, s.logger, "cart.add",
		func(ctx context.Context) (*entity.Cart, error) { return s.remote.AddToCart(ctx, foodID) },
		func(ctx context.Context) (*entity.Cart, error) { return s.local.AddToCart(ctx, foodID) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to add item to cart. Please try again."))

		return nil, err
	}

	s.queries.Invalidate(cacheKeyCart)

	s.notifier.Success("Item added to cart!")

	return cart, nil
}

// RemoveFromCart removes one unit of a food item and evicts cached cart reads.
func (s *cartService) RemoveFromCart(ctx context.Context, foodID string) (*entity.Cart, error) {
	cart, err := fallback(ctx, s.logger, "cart.remove",
		func(ctx context.Context) (*entity.Cart, error) { return s.remote.RemoveFromCart(ctx, foodID) },
		func(ctx context.Context) (*entity.Cart, error) { return s.local.RemoveFromCart(ctx, foodID) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to remove item from cart. Please try again."))

		return nil, err
	}

	s.queries.Invalidate(cacheKeyCart)

	s.notifier.Success("Item removed from cart!")

	return cart, nil
}

// ClearCart empties the cart and evicts cached cart reads.
func (s *cartService) ClearCart(ctx context.Context) error {
	_, err := fallback(ctx, s.logger, "cart.clear",
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.remote.ClearCart(ctx) },
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.local.ClearCart(ctx) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to clear cart. Please try again."))

		return err
	}

	s.queries.Invalidate(cacheKeyCart)

	s.notifier.Success("Cart cleared!")

	return nil
}
