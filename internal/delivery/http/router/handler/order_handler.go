package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"foodies/config"
	"foodies/internal/delivery/http/middleware"
	"foodies/internal/delivery/http/response"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"
	"foodies/internal/infra/localstore"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// orderStatusRequest carries the target status of an order transition.
type orderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// OrderHandler serves checkout, order history and the admin order endpoints.
type OrderHandler struct {
	store         *localstore.Store
	catalog       *localstore.Catalog
	paymentSecret string
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(cfg *config.Config, store *localstore.Store, catalog *localstore.Catalog) *OrderHandler {
	return &OrderHandler{
		store:         store,
		catalog:       catalog,
		paymentSecret: cfg.Payment.Secret,
	}
}

// Create places an order from the submitted lines and clears the user's cart.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(string)

	var req service.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	status := req.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !status.IsValid() {
		return errors.WithStack(domainerrors.ErrInvalidOrderStatus)
	}

	items := make([]entity.OrderItem, len(req.OrderedItems))
	for i, item := range req.OrderedItems {
		items[i] = item
		if items[i].Food == nil {
			items[i].Food = h.catalog.Find(item.FoodID)
		}
	}

	order := &entity.Order{
		ID:           "order_" + uuid.NewString(),
		UserID:       userID,
		OrderedItems: items,
		UserAddress:  req.UserAddress,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Amount:       req.Amount,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.store.PrependOrder(c.Request().Context(), order); err != nil {
		return errors.WithStack(err)
	}

	// Checkout consumes the cart.
	cart := entity.NewCart(userID)
	if err := h.store.SaveCart(c.Request().Context(), cart); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// ListMine returns the authenticated user's orders, newest first.
func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(string)

	orders, err := h.store.Orders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// ListAll returns every order across users, newest first. Admin only.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.store.AllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateStatus moves an order to a new status. Admin only.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if !req.Status.IsValid() {
		return errors.WithStack(domainerrors.ErrInvalidOrderStatus)
	}

	ctx := c.Request().Context()
	order, err := h.store.FindOrder(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if order == nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	orders, err := h.store.Orders(ctx, order.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	now := time.Now().UTC()
	var updated *entity.Order
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i].Status = req.Status
			orders[i].UpdatedAt = &now
			updated = &orders[i]
			break
		}
	}
	if err := h.store.SaveOrders(ctx, order.UserID, orders); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Order status updated")
}

// Delete removes an order permanently. Admin only.
func (h *OrderHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	order, err := h.store.FindOrder(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if order == nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	orders, err := h.store.Orders(ctx, order.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	remaining := orders[:0]
	for _, existing := range orders {
		if existing.ID != order.ID {
			remaining = append(remaining, existing)
		}
	}
	if err := h.store.SaveOrders(ctx, order.UserID, remaining); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// VerifyPayment checks the payment signature delivered by the payment
// provider callback.
func (h *OrderHandler) VerifyPayment(c echo.Context) error {
	var req service.PaymentVerification
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	mac := hmac.New(sha256.New, []byte(h.paymentSecret))
	mac.Write([]byte(req.OrderID + "|" + req.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		return errors.WithStack(domainerrors.ErrPaymentVerificationFailed)
	}

	return response.Success(c, http.StatusOK, service.PaymentResult{
		Success: true,
		Message: "Payment verified",
	}, "Payment verified successfully")
}
