package impl

import (
	"context"
	"log/slog"

	"foodies/internal/domain/entity"
	"foodies/internal/domain/service"
	"foodies/internal/infra/cache"
	"foodies/internal/usecase"
)

type authService struct {
	remote   service.AuthGateway
	local    service.AuthGateway
	session  service.SessionStore
	queries  *cache.QueryCache
	notifier service.Notifier
	logger   *slog.Logger
}

// NewAuthService creates the auth usecase over the remote gateway and its
// local substitute.
func NewAuthService(remote, local service.AuthGateway, session service.SessionStore, queries *cache.QueryCache, notifier service.Notifier, logger *slog.Logger) usecase.AuthUsecase {
	return &authService{
		remote:   remote,
		local:    local,
		session:  session,
		queries:  queries,
		notifier: notifier,
		logger:   logger,
	}
}

// Login authenticates with email and password and persists the session.
func (s *authService) Login(ctx context.Context, req service.LoginRequest) (*entity.User, error) {
	auth, err := fallback(ctx, s.logger, "auth.login",
		func(ctx context.Context) (*service.AuthSession, error) { return s.remote.Login(ctx, req) },
		func(ctx context.Context) (*service.AuthSession, error) { return s.local.Login(ctx, req) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Login failed. Please check your credentials."))

		return nil, err
	}

	if err := s.session.SaveSession(ctx, auth.Token, auth.User); err != nil {
		return nil, err
	}

	// Cart and order reads belong to the previous account.
	s.queries.Invalidate(cacheKeyCart)
	s.queries.Invalidate(cacheKeyOrders)

	s.notifier.Success("Login successful!")

	return auth.User, nil
}

// Register creates an account and persists the resulting session.
func (s *authService) Register(ctx context.Context, req service.RegisterRequest) (*entity.User, error) {
	auth, err := fallback(ctx, s.logger, "auth.register",
		func(ctx context.Context) (*service.AuthSession, error) { return s.remote.Register(ctx, req) },
		func(ctx context.Context) (*service.AuthSession, error) { return s.local.Register(ctx, req) },
	)
	if err != nil {
		s.notifier.Error(failureMessage(err, "Registration failed. Please try again."))

		return nil, err
	}

	if err := s.session.SaveSession(ctx, auth.Token, auth.User); err != nil {
		return nil, err
	}

	s.queries.Invalidate(cacheKeyCart)
	s.queries.Invalidate(cacheKeyOrders)

	s.notifier.Success("Registration successful!")

	return auth.User, nil
}

// Logout clears the persisted session and all cached reads.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.session.ClearSession(ctx); err != nil {
		return err
	}

	s.queries.Invalidate(cacheKeyCart)
	s.queries.Invalidate(cacheKeyOrders)

	s.notifier.Success("Logged out successfully")

	return nil
}

// CurrentUser returns the user of the persisted session, if any.
func (s *authService) CurrentUser(ctx context.Context) (*entity.User, bool) {
	return s.session.CurrentUser(ctx)
}
