package impl

import (
	"context"
	"log/slog"
	"time"

	"foodies/config"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"
	"foodies/internal/infra/cache"
	"foodies/internal/usecase"
)

type orderService struct {
	remote     service.OrderGateway
	local      service.OrderGateway
	cartRemote service.CartGateway
	cartLocal  service.CartGateway
	queries    *cache.QueryCache
	notifier   service.Notifier
	logger     *slog.Logger
	ttl        time.Duration
}

// NewOrderService creates the order usecase over the remote gateway and its
// local substitute. The cart gateways supply the line items at checkout.
func NewOrderService(cfg *config.Config, remote, local service.OrderGateway, cartRemote, cartLocal service.CartGateway, queries *cache.QueryCache, notifier service.Notifier, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		remote:     remote,
		local:      local,
		cartRemote: cartRemote,
		cartLocal:  cartLocal,
		queries:    queries,
		notifier:   notifier,
		logger:     logger,
		ttl:        cfg.Cache.CartTTL,
	}
}

// Checkout snapshots the current cart into a new order.
func (s *orderService) Checkout(ctx context.Context, req usecase.CheckoutRequest) (*entity.Order, error) {
	// Read the cart directly so checkout never works from a stale copy.
	cart, err := fallback(ctx, s.logger, "order.checkout.cart",
		s.cartRemote.GetCart,
		s.cartLocal.GetCart,
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to create order"))

		return nil, err
	}

	if len(cart.Items) == 0 {
		err := domainerrors.ErrValidationFailed.WrapMessage("cart is empty")
		s.notifier.Error("Your cart is empty")

		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, entity.OrderItem{
			FoodID:   item.FoodID,
			Price:    item.Price,
			Quantity: item.Quantity,
			Food:     item.Food,
		})
	}

	createReq := service.CreateOrderRequest{
		OrderedItems: items,
		UserAddress:  req.UserAddress,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Amount:       cart.TotalAmount,
		Status:       entity.OrderStatusPending,
	}

	order, err := fallback(ctx, s.logger, "order.create",
		func(ctx context.Context) (*entity.Order, error) { return s.remote.CreateOrder(ctx, createReq) },
		func(ctx context.Context) (*entity.Order, error) { return s.local.CreateOrder(ctx, createReq) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to create order"))

		return nil, err
	}

	s.queries.Invalidate(cacheKeyOrders)
	s.queries.Invalidate(cacheKeyCart)

	s.notifier.Success("Order created successfully!")

	return order, nil
}

// ListMyOrders returns the orders of the authenticated user, newest first.
func (s *orderService) ListMyOrders(ctx context.Context) ([]entity.Order, error) {
	return cachedRead(ctx, s.queries, cacheKeyOrdersMy, s.ttl, func(ctx context.Context) ([]entity.Order, error) {
		return fallback(ctx, s.logger, "order.list.mine",
			s.remote.ListUserOrders,
			s.local.ListUserOrders,
		)
	})
}

// ListAllOrders returns every order across users, newest first.
func (s *orderService) ListAllOrders(ctx context.Context) ([]entity.Order, error) {
	return cachedRead(ctx, s.queries, cacheKeyOrdersAll, s.ttl, func(ctx context.Context) ([]entity.Order, error) {
		return fallback(ctx, s.logger, "order.list.all",
			s.remote.ListAllOrders,
			s.local.ListAllOrders,
		)
	})
}

// UpdateOrderStatus moves an order to a new status.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	order, err := fallback(ctx, s.logger, "order.status",
		func(ctx context.Context) (*entity.Order, error) { return s.remote.UpdateOrderStatus(ctx, orderID, status) },
		func(ctx context.Context) (*entity.Order, error) { return s.local.UpdateOrderStatus(ctx, orderID, status) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to update order status"))

		return nil, err
	}

	s.queries.Invalidate(cacheKeyOrders)

	s.notifier.Success("Order status updated!")

	return order, nil
}

// DeleteOrder removes an order.
func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	_, err := fallback(ctx, s.logger, "order.delete",
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.remote.DeleteOrder(ctx, orderID) },
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.local.DeleteOrder(ctx, orderID) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Failed to delete order"))

		return err
	}

	s.queries.Invalidate(cacheKeyOrders)

	s.notifier.Success("Order deleted successfully!")

	return nil
}

// VerifyPayment confirms a completed payment against its signature.
func (s *orderService) VerifyPayment(ctx context.Context, req service.PaymentVerification) (*service.PaymentResult, error) {
	result, err := fallback(ctx, s.logger, "order.verify-payment",
		func(ctx context.Context) (*service.PaymentResult, error) { return s.remote.VerifyPayment(ctx, req) },
		func(ctx context.Context) (*service.PaymentResult, error) { return s.local.VerifyPayment(ctx, req) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Payment verification failed"))

		return nil, err
	}

	s.queries.Invalidate(cacheKeyOrders)

	s.notifier.Success("Payment verified successfully!")

	return result, nil
}
