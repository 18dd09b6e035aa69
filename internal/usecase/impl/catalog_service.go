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

type catalogService struct {
	remote   service.CatalogGateway
	local    service.CatalogGateway
	queries  *cache.QueryCache
	notifier service.Notifier
	logger   *slog.Logger
	ttl      time.Duration
}

// NewCatalogService creates the catalog usecase over the remote gateway and
// its local substitute.
func NewCatalogService(cfg *config.Config, remote, local service.CatalogGateway, queries *cache.QueryCache, notifier service.Notifier, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		remote:   remote,
		local:    local,
		queries:  queries,
		notifier: notifier,
		logger:   logger,
		ttl:      cfg.Cache.CatalogTTL,
	}
}

// ListFoods returns the catalog, served from cache while fresh.
func (s *catalogService) ListFoods(ctx context.Context) ([]entity.FoodItem, error) {
	return cachedRead(ctx, s.queries, cacheKeyFoods, s.ttl, func(ctx context.Context) ([]entity.FoodItem, error) {
		return fallback(ctx, s.logger, "catalog.list",
			s.remote.ListFoods,
			s.local.ListFoods,
		)
	})
}

// GetFood returns one catalog entry, served from cache while fresh.
func (s *catalogService) GetFood(ctx context.Context, id string) (*entity.FoodItem, error) {
	return cachedRead(ctx, s.queries, cacheKeyFood+id, s.ttl, func(ctx context.Context) (*entity.FoodItem, error) {
		return fallback(ctx, s.logger, "catalog.get",
			func(ctx context.Context) (*entity.FoodItem, error) { return s.remote.GetFood(ctx, id) },
			func(ctx context.Context) (*entity.FoodItem, error) { return s.local.GetFood(ctx, id) },
		)
	})
}

// CreateFood adds a catalog entry and evicts cached catalog reads.
func (s *catalogService) CreateFood(ctx context.Context, req service.CreateFoodRequest) (*entity.FoodItem, error) {
	food, err := fallback(ctx, s.logger, "catalog.create",
		func(ctx context.Context) (*entity.FoodItem, error) { return s.remote.CreateFood(ctx, req) },
		func(ctx context.Context) (*entity.FoodItem, error) { return s.local.CreateFood(ctx, req) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to create food item"))

		return nil, err
	}

	s.queries.Invalidate(cacheKeyFoods)
	s.queries.Invalidate(cacheKeyFood)

	s.notifier.Success("Food item created successfully!")

	return food, nil
}

// DeleteFood removes a catalog entry and evicts cached catalog reads.
func (s *catalogService) DeleteFood(ctx context.Context, id string) error {
	_, err := fallback(ctx, s.logger, "catalog.delete",
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.remote.DeleteFood(ctx, id) },
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.local.DeleteFood(ctx, id) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to delete food item"))

		return err
	}

	s.queries.Invalidate(cacheKeyFoods)
	s.queries.Invalidate(cacheKeyFood)

	s.notifier.Success("Food item deleted successfully!")

	return nil
}
