package service

import (
	"context"

	"foodies/internal/domain/entity"
)

// SessionStore persists the authenticated session between runs. The token it
// holds is attached to every outbound request, and the local gateways use the
// stored user to scope their dataset.
type SessionStore interface {
	// Token returns the persisted auth token, if any.
	Token(ctx context.Context) (string, bool)

	// CurrentUser returns the persisted user record, if any.
	CurrentUser(ctx context.Context) (*entity.User, bool)

	// SaveSession persists the token and user after a successful login.
	SaveSession(ctx context.Context, token string, user *entity.User) error

	// ClearSession removes the persisted token and user.
	ClearSession(ctx context.Context) error
}
