package localstore

import (
	"context"
	"time"

	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"

	"github.com/google/uuid"
)

type authGateway struct {
	store   *Store
	hasher  service.PasswordHasher
	latency time.Duration
}

// NewAuthGateway returns the local substitute for the auth endpoints.
func NewAuthGateway(store *Store, hasher service.PasswordHasher, latency time.Duration) service.AuthGateway {
	return &authGateway{store: store, hasher: hasher, latency: latency}
}

// Login matches a user by email across the seed accounts and any registered
// records. The substitute keeps no credential database for the seed pair, so
// a known email is accepted with any password.
func (g *authGateway) Login(ctx context.Context, req service.LoginRequest) (*service.AuthSession, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	user, err := g.store.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	result := user.User
	if result.Role == "" {
		result.Role = entity.RoleUser
	}

	return &service.AuthSession{Token: newLocalToken(), User: &result}, nil
}

// Register rejects duplicate emails and appends a new record.
func (g *authGateway) Register(ctx context.Context, req service.RegisterRequest) (*service.AuthSession, error) {
	if err := delay(ctx, g.latency); err != nil {
		return nil, err
	}

	existing, err := g.store.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	hash, err := g.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	newUser := StoredUser{
		User: entity.User{
			ID:     "user_" + uuid.NewString(),
			Name:   req.Name,
			Email:  req.Email,
			Mobile: req.Mobile,
			Role:   entity.RoleUser,
		},
		PasswordHash: hash,
	}

	if err := g.store.AppendUser(ctx, newUser); err != nil {
		return nil, err
	}

	return &service.AuthSession{Token: newLocalToken(), User: &newUser.User}, nil
}

func newLocalToken() string {
	return "local_" + uuid.NewString()
}
