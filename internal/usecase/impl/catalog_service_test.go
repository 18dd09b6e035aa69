package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"
)

func TestCatalogService_ListFoodsCachesResult(t *testing.T) {
	calls := 0
	remote := &fakeCatalogGateway{
		listFn: func(context.Context) ([]entity.FoodItem, error) {
			calls++
			return []entity.FoodItem{{ID: "1", Name: "Chicken Biryani", Price: 299}}, nil
		},
	}

	svc := NewCatalogService(testConfig(), remote, &fakeCatalogGateway{}, newQueryCache(), &recorderNotifier{}, testLogger())

	for i := 0; i < 3; i++ {
		foods, err := svc.ListFoods(context.Background())
		require.NoError(t, err)
		require.Len(t, foods, 1)
		assert.Equal(t, "Chicken Biryani", foods[0].Name)
	}

	assert.Equal(t, 1, calls)
}

func TestCatalogService_ListFoodsFallsBackWhenBackendDown(t *testing.T) {
	remote := &fakeCatalogGateway{
		listFn: func(context.Context) ([]entity.FoodItem, error) { return nil, errBackendDown() },
	}
	local := &fakeCatalogGateway{
		listFn: func(context.Context) ([]entity.FoodItem, error) {
			return []entity.FoodItem{{ID: "1", Name: "Chicken Biryani", Price: 299}}, nil
		},
	}

	svc := NewCatalogService(testConfig(), remote, local, newQueryCache(), &recorderNotifier{}, testLogger())

	foods, err := svc.ListFoods(context.Background())
	require.NoError(t, err)
	assert.Len(t, foods, 1)
}

func TestCatalogService_GetFoodNotFoundPropagates(t *testing.T) {
	remote := &fakeCatalogGateway{
		getFn: func(_ context.Context, id string) (*entity.FoodItem, error) {
			return nil, domainerrors.ErrFoodNotFound
		},
	}

	svc := NewCatalogService(testConfig(), remote, &fakeCatalogGateway{}, newQueryCache(), &recorderNotifier{}, testLogger())

	_, err := svc.GetFood(context.Background(), "99")
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestCatalogService_CreateFoodEvictsCatalogReads(t *testing.T) {
	remote := &fakeCatalogGateway{
		listFn: func(context.Context) ([]entity.FoodItem, error) { return nil, nil },
		createFn: func(_ context.Context, req service.CreateFoodRequest) (*entity.FoodItem, error) {
			return &entity.FoodItem{ID: "food_1", Name: req.Name, Price: req.Price}, nil
		},
	}
	queries := newQueryCache()
	notifier := &recorderNotifier{}

	svc := NewCatalogService(testConfig(), remote, &fakeCatalogGateway{}, queries, notifier, testLogger())

	_, err := svc.ListFoods(context.Background())
	require.NoError(t, err)
	_, cached := queries.Get(cacheKeyFoods)
	require.True(t, cached)

	_, err = svc.CreateFood(context.Background(), service.CreateFoodRequest{Name: "Dal Makhani", Category: "Main Course", Price: 199})
	require.NoError(t, err)

	_, cached = queries.Get(cacheKeyFoods)
	assert.False(t, cached)
	assert.Equal(t, []string{"Food item created successfully!"}, notifier.successes)
}

func TestCatalogService_DeleteFoodNotifiesOnFailure(t *testing.T) {
	remote := &fakeCatalogGateway{
		deleteFn: func(_ context.Context, id string) error { return domainerrors.ErrFoodNotFound },
	}
	notifier := &recorderNotifier{}

	svc := NewCatalogService(testConfig(), remote, &fakeCatalogGateway{}, newQueryCache(), notifier, testLogger())

	err := svc.DeleteFood(context.Background(), "99")
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
	assert.Equal(t, []string{"Food item not found"}, notifier.failures)
	assert.Empty(t, notifier.successes)
}
