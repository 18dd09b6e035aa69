package handler

import (
	"net/http"
	"time"

	"foodies/internal/delivery/http/response"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"
	"foodies/internal/infra/localstore"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FoodHandler serves the catalog endpoints.
type FoodHandler struct {
	catalog *localstore.Catalog
}

// NewFoodHandler is the constructor for FoodHandler, injected by Fx.
func NewFoodHandler(catalog *localstore.Catalog) *FoodHandler {
	return &FoodHandler{catalog: catalog}
}

// List returns every catalog entry.
func (h *FoodHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.List(), "")
}

// Get returns one catalog entry by id.
func (h *FoodHandler) Get(c echo.Context) error {
	food := h.catalog.Find(c.Param("id"))
	if food == nil {
		return errors.WithStack(domainerrors.ErrFoodNotFound)
	}

	return response.Success(c, http.StatusOK, food, "")
}

// Create adds a catalog entry. Admin only.
func (h *FoodHandler) Create(c echo.Context) error {
	var req service.CreateFoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	food := entity.FoodItem{
		ID:          "food_" + uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	h.catalog.Add(food)

	return response.Success(c, http.StatusCreated, food, "Food item created successfully")
}

// Delete removes a catalog entry. Admin only.
func (h *FoodHandler) Delete(c echo.Context) error {
	if !h.catalog.Remove(c.Param("id")) {
		return errors.WithStack(domainerrors.ErrFoodNotFound)
	}

	return response.Success(c, http.StatusOK, nil, "Food item deleted successfully")
}
