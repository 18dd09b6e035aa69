package handler

import (
	"net/http"

	"foodies/internal/delivery/http/middleware"
	"foodies/internal/delivery/http/response"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/infra/localstore"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// cartItemRequest identifies a catalog entry in cart mutations.
type cartItemRequest struct {
	FoodID string `json:"foodId" validate:"required"`
}

// CartHandler serves the per-user cart endpoints.
type CartHandler struct {
	store   *localstore.Store
	catalog *localstore.Catalog
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(store *localstore.Store, catalog *localstore.Catalog) *CartHandler {
	return &CartHandler{store: store, catalog: catalog}
}

// Get returns the cart of the authenticated user.
func (h *CartHandler) Get(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(string)

	cart, err := h.store.Cart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// Add puts one unit of a food item into the cart.
func (h *CartHandler) Add(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(string)

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	food := h.catalog.Find(req.FoodID)
	if food == nil {
		return errors.WithStack(domainerrors.ErrFoodNotFound)
	}

	cart, err := h.store.Cart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	cart.AddItem(food)
	if err := h.store.SaveCart(c.Request().Context(), cart); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// Remove drops one unit of a food item from the cart.
func (h *CartHandler) Remove(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(string)

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.store.Cart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	if !cart.RemoveItem(req.FoodID) {
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}
	if err := h.store.SaveCart(c.Request().Context(), cart); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(string)

	cart, err := h.store.Cart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	cart.Clear()
	if err := h.store.SaveCart(c.Request().Context(), cart); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
