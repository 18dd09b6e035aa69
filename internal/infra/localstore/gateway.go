package localstore

import (
	"context"
	"time"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
)

// delay emulates network latency before a local operation resolves.
// A zero latency returns immediately.
func delay(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(latency):
		return nil
	}
}

// requireSession returns the persisted session user or ErrUnauthenticated.
func requireSession(ctx context.Context, store *Store) (*entity.User, error) {
	user, ok := store.CurrentUser(ctx)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return user, nil
}
