package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"foodies/config"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"
	"foodies/internal/errors"
	"foodies/internal/infra/cache"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.CartTTL = 30 * time.Second
	cfg.Cache.CatalogTTL = 5 * time.Minute

	return cfg
}

// errBackendDown mimics a request that never reached the backend.
func errBackendDown() error {
	return errors.Wrap(domainerrors.ErrNetworkUnavailable, "connection refused")
}

// recorderNotifier captures outcome messages for assertions.
type recorderNotifier struct {
	successes []string
	failures  []string
}

func (n *recorderNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recorderNotifier) Error(message string)   { n.failures = append(n.failures, message) }

// memorySession is an in-memory SessionStore.
type memorySession struct {
	token string
	user  *entity.User
}

func (s *memorySession) Token(context.Context) (string, bool) {
	return s.token, s.token != ""
}

func (s *memorySession) CurrentUser(context.Context) (*entity.User, bool) {
	return s.user, s.user != nil
}

func (s *memorySession) SaveSession(_ context.Context, token string, user *entity.User) error {
	s.token, s.user = token, user

	return nil
}

func (s *memorySession) ClearSession(context.Context) error {
	s.token, s.user = "", nil

	return nil
}

// Gateway fakes dispatch to function fields so each test controls exactly
// the calls it expects. Calls without a function set fail loudly.

type fakeAuthGateway struct {
	loginFn    func(ctx context.Context, req service.LoginRequest) (*service.AuthSession, error)
	registerFn func(ctx context.Context, req service.RegisterRequest) (*service.AuthSession, error)
}

func (g *fakeAuthGateway) Login(ctx context.Context, req service.LoginRequest) (*service.AuthSession, error) {
	if g.loginFn == nil {
		panic("unexpected Login call")
	}
	return g.loginFn(ctx, req)
}

func (g *fakeAuthGateway) Register(ctx context.Context, req service.RegisterRequest) (*service.AuthSession, error) {
	if g.registerFn == nil {
		panic("unexpected Register call")
	}
	return g.registerFn(ctx, req)
}

type fakeCatalogGateway struct {
	listFn   func(ctx context.Context) ([]entity.FoodItem, error)
	getFn    func(ctx context.Context, id string) (*entity.FoodItem, error)
	createFn func(ctx context.Context, req service.CreateFoodRequest) (*entity.FoodItem, error)
	deleteFn func(ctx context.Context, id string) error
}

func (g *fakeCatalogGateway) ListFoods(ctx context.Context) ([]entity.FoodItem, error) {
	if g.listFn == nil {
		panic("unexpected ListFoods call")
	}
	return g.listFn(ctx)
}

func (g *fakeCatalogGateway) GetFood(ctx context.Context, id string) (*entity.FoodItem, error) {
	if g.getFn == nil {
		panic("unexpected GetFood call")
	}
	return g.getFn(ctx, id)
}

func (g *fakeCatalogGateway) CreateFood(ctx context.Context, req service.CreateFoodRequest) (*entity.FoodItem, error) {
	if g.createFn == nil {
		panic("unexpected CreateFood call")
	}
	return g.createFn(ctx, req)
}

func (g *fakeCatalogGateway) DeleteFood(ctx context.Context, id string) error {
	if g.deleteFn == nil {
		panic("unexpected DeleteFood call")
	}
	return g.deleteFn(ctx, id)
}

type fakeCartGateway struct {
	getFn    func(ctx context.Context) (*entity.Cart, error)
	addFn    func(ctx context.Context, foodID string) (*entity.Cart, error)
	removeFn func(ctx context.Context, foodID string) (*entity.Cart, error)
	clearFn  func(ctx context.Context) error
}

func (g *fakeCartGateway) GetCart(ctx context.Context) (*entity.Cart, error) {
	if g.getFn == nil {
		panic("unexpected GetCart call")
	}
	return g.getFn(ctx)
}

func (g *fakeCartGateway) AddToCart(ctx context.Context, foodID string) (*entity.Cart, error) {
	if g.addFn == nil {
		panic("unexpected AddToCart call")
	}
	return g.addFn(ctx, foodID)
}

func (g *fakeCartGateway) RemoveFromCart(ctx context.Context, foodID string) (*entity.Cart, error) {
	if g.removeFn == nil {
		panic("unexpected RemoveFromCart call")
	}
	return g.removeFn(ctx, foodID)
}

func (g *fakeCartGateway) ClearCart(ctx context.Context) error {
	if g.clearFn == nil {
		panic("unexpected ClearCart call")
	}
	return g.clearFn(ctx)
}

type fakeOrderGateway struct {
	createFn     func(ctx context.Context, req service.CreateOrderRequest) (*entity.Order, error)
	listMineFn   func(ctx context.Context) ([]entity.Order, error)
	listAllFn    func(ctx context.Context) ([]entity.Order, error)
	updateFn     func(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)
	deleteFn     func(ctx context.Context, orderID string) error
	verifyFn     func(ctx context.Context, req service.PaymentVerification) (*service.PaymentResult, error)
	createCalled int
}

func (g *fakeOrderGateway) CreateOrder(ctx context.Context, req service.CreateOrderRequest) (*entity.Order, error) {
	if g.createFn == nil {
		panic("unexpected CreateOrder call")
	}
	g.createCalled++
	return g.createFn(ctx, req)
}

func (g *fakeOrderGateway) ListUserOrders(ctx context.Context) ([]entity.Order, error) {
	if g.listMineFn == nil {
		panic("unexpected ListUserOrders call")
	}
	return g.listMineFn(ctx)
}

func (g *fakeOrderGateway) ListAllOrders(ctx context.Context) ([]entity.Order, error) {
	if g.listAllFn == nil {
		panic("unexpected ListAllOrders call")
	}
	return g.listAllFn(ctx)
}

func (g *fakeOrderGateway) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if g.updateFn == nil {
		panic("unexpected UpdateOrderStatus call")
	}
	return g.updateFn(ctx, orderID, status)
}

func (g *fakeOrderGateway) DeleteOrder(ctx context.Context, orderID string) error {
	if g.deleteFn == nil {
		panic("unexpected DeleteOrder call")
	}
	return g.deleteFn(ctx, orderID)
}

func (g *fakeOrderGateway) VerifyPayment(ctx context.Context, req service.PaymentVerification) (*service.PaymentResult, error) {
	if g.verifyFn == nil {
		panic("unexpected VerifyPayment call")
	}
	return g.verifyFn(ctx, req)
}

func newQueryCache() *cache.QueryCache {
	return cache.New()
}
