// Package service defines the contracts between the orchestration layer and
// the infrastructure layer. Each entity has one gateway interface with two
// implementations: the remote HTTP backend and the local substitute dataset.
package service

import (
	"context"

	"foodies/internal/domain/entity"
)

// LoginRequest carries the credentials for an email login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries the data for a new account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile,omitempty"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthSession is the result of a successful login or registration.
type AuthSession struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AuthGateway exposes the authentication endpoints.
type AuthGateway interface {
	Login(ctx context.Context, req LoginRequest) (*AuthSession, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthSession, error)
}

// CreateFoodRequest carries the data for a new catalog entry.
type CreateFoodRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// CatalogGateway exposes the food catalog endpoints.
type CatalogGateway interface {
	ListFoods(ctx context.Context) ([]entity.FoodItem, error)
	GetFood(ctx context.Context, id string) (*entity.FoodItem, error)
	CreateFood(ctx context.Context, req CreateFoodRequest) (*entity.FoodItem, error)
	DeleteFood(ctx context.Context, id string) error
}

// CartGateway exposes the cart endpoints. All operations act on the cart of
// the currently authenticated user.
type CartGateway interface {
	GetCart(ctx context.Context) (*entity.Cart, error)
	AddToCart(ctx context.Context, foodID string) (*entity.Cart, error)
	RemoveFromCart(ctx context.Context, foodID string) (*entity.Cart, error)
	ClearCart(ctx context.Context) error
}

// CreateOrderRequest carries the checkout payload: the line items snapshotted
// from the cart plus delivery and contact details.
type CreateOrderRequest struct {
	OrderedItems []entity.OrderItem `json:"orderedItems" validate:"required,min=1"`
	UserAddress  string             `json:"userAddress" validate:"required"`
	Email        string             `json:"email" validate:"required,email"`
	PhoneNumber  string             `json:"phoneNumber" validate:"required"`
	Amount       float64            `json:"amount" validate:"required,gt=0"`
	Status       entity.OrderStatus `json:"orderStatus"`
}

// PaymentVerification carries the signature material of a completed payment.
type PaymentVerification struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// PaymentResult reports the outcome of a payment verification.
type PaymentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrderGateway exposes the order endpoints. ListAllOrders, UpdateOrderStatus
// and DeleteOrder are admin operations.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)
	ListUserOrders(ctx context.Context) ([]entity.Order, error)
	ListAllOrders(ctx context.Context) ([]entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
	VerifyPayment(ctx context.Context, req PaymentVerification) (*PaymentResult, error)
}
