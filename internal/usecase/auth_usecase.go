// Package usecase defines the application-facing operations. Each usecase
// orchestrates a remote gateway with its local substitute, the session store,
// the query cache and outcome notifications.
package usecase

import (
	"context"

	"foodies/internal/domain/entity"
	"foodies/internal/domain/service"
)

// AuthUsecase covers login, registration and session lifecycle.
type AuthUsecase interface {
	// Login authenticates with email and password and persists the session.
	Login(ctx context.Context, req service.LoginRequest) (*entity.User, error)

	// Register creates an account and persists the resulting session.
	Register(ctx context.Context, req service.RegisterRequest) (*entity.User, error)

	// Logout clears the persisted session and all cached reads.
	Logout(ctx context.Context) error

	// CurrentUser returns the user of the persisted session, if any.
	CurrentUser(ctx context.Context) (*entity.User, bool)
}
