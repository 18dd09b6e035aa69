package localstore

import (
	"context"
	"time"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"

	"github.com/google/uuid"
)

type catalogGateway struct {
	catalog *Catalog
	latency time.Duration
}

// NewCatalogGateway returns the local substitute for the food endpoints.
func NewCatalogGateway(catalog *Catalog, latency time.Duration) service.CatalogGateway {
	return &catalogGateway{catalog: catalog, latency: latency}
}

func (g *catalogGateway) ListFoods(ctx context.Context) ([]entity.FoodItem, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	return g.catalog.List(), nil
}

func (g *catalogGateway) GetFood(ctx context.Context, id string) (*entity.FoodItem, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	item := g.catalog.Find(id)
	if item == nil {
		return nil, domainerrors.ErrFoodNotFound
	}

	return item, nil
}

func (g *catalogGateway) CreateFood(ctx context.Context, req service.CreateFoodRequest) (*entity.FoodItem, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = placeholderImageURL
	}

	item := entity.FoodItem{
		ID:          "food_" + uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
	}
	g.catalog.Add(item)

	return &item, nil
}

func (g *catalogGateway) DeleteFood(ctx context.Context, id string) error {
	if err := delay(ctx, g.latency); err != nil {
		return err
	}

	if !g.catalog.Remove(id) {
		return domainerrors.ErrFoodNotFound
	}

	return nil
}
