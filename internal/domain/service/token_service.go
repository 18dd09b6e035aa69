package service

import "foodies/internal/domain/entity"

// TokenClaims are the verified claims extracted from an access token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   entity.Role
}

// TokenService issues and validates access tokens for the bundled backend.
type TokenService interface {
	// Generate creates a signed access token for the given user.
	Generate(user *entity.User) (string, error)

	// Validate checks a token string and returns its claims.
	Validate(tokenString string) (*TokenClaims, error)
}
