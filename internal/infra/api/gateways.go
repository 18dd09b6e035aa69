package api

import (
	"context"

	"foodies/internal/domain/entity"
	"foodies/internal/domain/service"
)

// Each remote gateway is a pass-through: invoke the client with the right
// method, path and body, return the parsed payload, or propagate the error
// unchanged. Caching and fallback belong to the orchestration layer.

type authGateway struct {
	client *Client
}

// NewAuthGateway returns the remote implementation of the auth endpoints.
func NewAuthGateway(client *Client) service.AuthGateway {
	return &authGateway{client: client}
}

func (g *authGateway) Login(ctx context.Context, req service.LoginRequest) (*service.AuthSession, error) {
	var session service.AuthSession
	if err := g.client.post(ctx, "/auth/login", req, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (g *authGateway) Register(ctx context.Context, req service.RegisterRequest) (*service.AuthSession, error) {
	var session service.AuthSession
	if err := g.client.post(ctx, "/auth/register", req, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

type catalogGateway struct {
	client *Client
}

// NewCatalogGateway returns the remote implementation of the food endpoints.
func NewCatalogGateway(client *Client) service.CatalogGateway {
	return &catalogGateway{client: client}
}

func (g *catalogGateway) ListFoods(ctx context.Context) ([]entity.FoodItem, error) {
	var foods []entity.FoodItem
	if err := g.client.get(ctx, "/food", &foods); err != nil {
		return nil, err
	}

	return foods, nil
}

func (g *catalogGateway) GetFood(ctx context.Context, id string) (*entity.FoodItem, error) {
	var food entity.FoodItem
	if err := g.client.get(ctx, "/food/"+id, &food); err != nil {
		return nil, err
	}

	return &food, nil
}

func (g *catalogGateway) CreateFood(ctx context.Context, req service.CreateFoodRequest) (*entity.FoodItem, error) {
	var food entity.FoodItem
	if err := g.client.post(ctx, "/food", req, &food); err != nil {
		return nil, err
	}

	return &food, nil
}

func (g *catalogGateway) DeleteFood(ctx context.Context, id string) error {
	return g.client.delete(ctx, "/food/"+id)
}

type cartGateway struct {
	client *Client
}

// NewCartGateway returns the remote implementation of the cart endpoints.
func NewCartGateway(client *Client) service.CartGateway {
	return &cartGateway{client: client}
}

func (g *cartGateway) GetCart(ctx context.Context) (*entity.Cart, error) {
	var cart entity.Cart
	if err := g.client.get(ctx, "/cart", &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (g *cartGateway) AddToCart(ctx context.Context, foodID string) (*entity.Cart, error) {
	var cart entity.Cart
	body := map[string]string{"foodId": foodID}
	if err := g.client.post(ctx, "/cart", body, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (g *cartGateway) RemoveFromCart(ctx context.Context, foodID string) (*entity.Cart, error) {
	var cart entity.Cart
	body := map[string]string{"foodId": foodID}
	if err := g.client.post(ctx, "/cart/remove", body, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (g *cartGateway) ClearCart(ctx context.Context) error {
	return g.client.delete(ctx, "/cart")
}

type orderGateway struct {
	client *Client
}

// NewOrderGateway returns the remote implementation of the order endpoints.
func NewOrderGateway(client *Client) service.OrderGateway {
	return &orderGateway{client: client}
}

func (g *orderGateway) CreateOrder(ctx context.Context, req service.CreateOrderRequest) (*entity.Order, error) {
	var order entity.Order
	if err := g.client.post(ctx, "/order", req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (g *orderGateway) ListUserOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := g.client.get(ctx, "/order/user", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (g *orderGateway) ListAllOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := g.client.get(ctx, "/order/all", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (g *orderGateway) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	var order entity.Order
	body := map[string]string{"status": status.String()}
	if err := g.client.put(ctx, "/order/"+orderID+"/status", body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (g *orderGateway) DeleteOrder(ctx context.Context, orderID string) error {
	return g.client.delete(ctx, "/order/"+orderID)
}

func (g *orderGateway) VerifyPayment(ctx context.Context, req service.PaymentVerification) (*service.PaymentResult, error) {
	var result service.PaymentResult
	if err := g.client.post(ctx, "/order/verify-payment", req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
