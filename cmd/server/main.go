// Command server runs the bundled food-ordering backend: the HTTP API the
// client layer talks to when it is reachable.
package main

import (
	"context"
	"log/slog"
	"os"

	"foodies/config"
	"foodies/internal/delivery"
	"foodies/internal/delivery/http"
	"foodies/internal/delivery/http/middleware"
	"foodies/internal/delivery/http/router/handler"
	"foodies/internal/infra/auth"
	"foodies/internal/infra/localstore"
	logs "foodies/internal/infra/log"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newStore,
		localstore.NewCatalog,
	)
}

// newStore opens the persistent key-value store backing users, carts and
// orders, and ties its lifetime to the application's.
func newStore(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (*localstore.Store, error) {
	store, err := localstore.New(ctx, cfg.Store.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewFoodHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
