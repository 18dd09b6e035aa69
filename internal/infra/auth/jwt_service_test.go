package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodies/config"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
)

func newTestService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t, "test-secret")

	user := &entity.User{
		ID:    "user_1",
		Email: "admin@test.com",
		Role:  entity.RoleAdmin,
	}

	token, err := svc.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "admin@test.com", claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestService(t, "secret-a")
	verifier := newTestService(t, "secret-b")

	token, err := issuer.Generate(&entity.User{ID: "user_1", Email: "user@test.com", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestService(t, "test-secret")

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
