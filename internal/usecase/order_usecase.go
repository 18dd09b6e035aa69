package usecase

import (
	"context"

	"foodies/internal/domain/entity"
	"foodies/internal/domain/service"
)

// CheckoutRequest carries the delivery details for placing an order. The
// line items and amount are taken from the current cart.
type CheckoutRequest struct {
	UserAddress string `json:"userAddress" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// OrderUsecase covers checkout, order history and the admin order operations.
type OrderUsecase interface {
	// Checkout snapshots the current cart into a new order. On success the
	// cart is cleared and cached cart and order reads are evicted.
	Checkout(ctx context.Context, req CheckoutRequest) (*entity.Order, error)

	// ListMyOrders returns the orders of the authenticated user, newest
	// first, served from cache while fresh.
	ListMyOrders(ctx context.Context) ([]entity.Order, error)

	// ListAllOrders returns every order across users, newest first. Admin
	// operation.
	ListAllOrders(ctx context.Context) ([]entity.Order, error)

	// UpdateOrderStatus moves an order to a new status. Admin operation.
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)

	// DeleteOrder removes an order. Admin operation.
	DeleteOrder(ctx context.Context, orderID string) error

	// VerifyPayment confirms a completed payment against its signature.
	VerifyPayment(ctx context.Context, req service.PaymentVerification) (*service.PaymentResult, error)
}
