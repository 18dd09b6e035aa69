package usecase

import (
	"context"

	"foodies/internal/domain/entity"
	"foodies/internal/domain/service"
)

// CatalogUsecase covers the food catalog reads and the admin mutations.
type CatalogUsecase interface {
	// ListFoods returns the catalog, served from cache while fresh.
	ListFoods(ctx context.Context) ([]entity.FoodItem, error)

	// GetFood returns one catalog entry, served from cache while fresh.
	GetFood(ctx context.Context, id string) (*entity.FoodItem, error)

	// CreateFood adds a catalog entry and evicts cached catalog reads.
	CreateFood(ctx context.Context, req service.CreateFoodRequest) (*entity.FoodItem, error)

	// DeleteFood removes a catalog entry and evicts cached catalog reads.
	DeleteFood(ctx context.Context, id string) error
}
