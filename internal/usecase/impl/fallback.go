// Package impl contains the usecase implementations. Every read and mutation
// goes to the remote backend first and falls back to the local substitute
// only when the backend could not be reached at all; application errors from
// a reachable backend propagate unchanged.
package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/errors"
	"foodies/internal/infra/cache"
)

// Cache key groups. Mutations evict by prefix so one group of reads goes
// stale together.
const (
	cacheKeyFoods     = "foods"
	cacheKeyFood      = "food:"
	cacheKeyCart      = "cart"
	cacheKeyOrdersMy  = "orders:mine"
	cacheKeyOrdersAll = "orders:all"
	cacheKeyOrders    = "orders"
)

// fallback runs the remote operation and, only when the backend was
// unreachable, the local one. Any other remote failure is the final answer.
func fallback[T any](ctx context.Context, logger *slog.Logger, op string, remote, local func(context.Context) (T, error)) (T, error) {
	value, err := remote(ctx)
	if err == nil {
		return value, nil
	}

	if !errors.Is(err, domainerrors.ErrNetworkUnavailable) {
		var zero T

		return zero, err
	}

	logger.Warn("backend unreachable, using local data",
		slog.String("op", op),
		slog.Any("error", err),
	)

	return local(ctx)
}

// cachedRead serves key from the cache while fresh, otherwise runs fetch and
// stores the result for the given staleness window. Failed fetches are not
// cached.
func cachedRead[T any](ctx context.Context, store *cache.QueryCache, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	if cached, ok := store.Get(key); ok {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T

		return zero, err
	}

	store.Set(key, value, ttl)

	return value, nil
}

// failureMessage extracts the user-facing message of an application error,
// falling back to a generic one for anything else.
func failureMessage(err error, generic string) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Message() != "" {
		return appErr.Message()
	}

	return generic
}
