package localstore

import (
	"context"
	"time"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"

	"github.com/google/uuid"
)

type orderGateway struct {
	store   *Store
	catalog *Catalog
	latency time.Duration
}

// NewOrderGateway returns the local substitute for the order endpoints.
func NewOrderGateway(store *Store, catalog *Catalog, latency time.Duration) service.OrderGateway {
	return &orderGateway{store: store, catalog: catalog, latency: latency}
}

// CreateOrder snapshots the submitted lines, prepends the order to its
// owner's list, and clears that user's cart as a side effect.
func (g *orderGateway) CreateOrder(ctx context.Context, req service.CreateOrderRequest) (*entity.Order, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	user, err := requireSession(ctx, g.store)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.OrderStatusPending
	}

	items := make([]entity.OrderItem, len(req.OrderedItems))
	for i, item := range req.OrderedItems {
		items[i] = item
		// Resolve the catalog snapshot when the food still exists.
		if items[i].Food == nil {
			items[i].Food = g.catalog.Find(item.FoodID)
		}
	}

	order := &entity.Order{
		ID:           "order_" + uuid.NewString(),
		UserID:       user.ID,
		OrderedItems: items,
		UserAddress:  req.UserAddress,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Amount:       req.Amount,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	if err := g.store.PrependOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := g.store.SaveCart(ctx, entity.NewCart(user.ID)); err != nil {
		return nil, err
	}

	return order, nil
}

func (g *orderGateway) ListUserOrders(ctx context.Context) ([]entity.Order, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	user, err := requireSession(ctx, g.store)
	if err != nil {
		return nil, err
	}

	return g.store.Orders(ctx, user.ID)
}

func (g *orderGateway) ListAllOrders(ctx context.Context) ([]entity.Order, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	return g.store.AllOrders(ctx)
}

func (g *orderGateway) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	order, err := g.store.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domainerrors.ErrOrderNotFound
	}

	now := time.Now().UTC()
	order.Status = status
	order.UpdatedAt = &now

	orders, err := g.store.Orders(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i] = *order

			break
		}
	}
	if err := g.store.SaveOrders(ctx, order.UserID, orders); err != nil {
		return nil, err
	}

	return order, nil
}

func (g *orderGateway) DeleteOrder(ctx context.Context, orderID string) error {
	if err := delay(ctx, g.latency); err != nil {
		return err
	}

	order, err := g.store.FindOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domainerrors.ErrOrderNotFound
	}

	orders, err := g.store.Orders(ctx, order.UserID)
	if err != nil {
		return err
	}
	remaining := orders[:0]
	for _, o := range orders {
		if o.ID != orderID {
			remaining = append(remaining, o)
		}
	}

	return g.store.SaveOrders(ctx, order.UserID, remaining)
}

// VerifyPayment approves unconditionally; the substitute has no payment
// provider to check against.
func (g *orderGateway) VerifyPayment(ctx context.Context, _ service.PaymentVerification) (*service.PaymentResult, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	return &service.PaymentResult{Success: true, Message: "Payment verified successfully"}, nil
}
