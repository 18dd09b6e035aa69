package localstore

import (
	"context"
	"testing"

	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"
	"foodies/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainHasher avoids bcrypt cost in tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Check(password, hash string) bool     { return "hashed:"+password == hash }

func TestAuthGateway_LoginSeedUser(t *testing.T) {
	ctx := context.Background()
	gw := NewAuthGateway(newTestStore(t), plainHasher{}, 0)

	session, err := gw.Login(ctx, service.LoginRequest{Email: "user@test.com", Password: "anything"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "John Doe", session.User.Name)
}

func TestAuthGateway_LoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	gw := NewAuthGateway(newTestStore(t), plainHasher{}, 0)

	_, err := gw.Login(ctx, service.LoginRequest{Email: "nobody@test.com", Password: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthGateway_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	gw := NewAuthGateway(newTestStore(t), plainHasher{}, 0)

	req := service.RegisterRequest{Name: "Jane", Email: "jane@test.com", Password: "secret-pass"}

	session, err := gw.Register(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.User.ID)

	// The second attempt with the same email conflicts.
	_, err = gw.Register(ctx, req)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	// The first registration remains retrievable by login.
	again, err := gw.Login(ctx, service.LoginRequest{Email: "jane@test.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, again.User.ID)
}
