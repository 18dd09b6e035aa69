// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"foodies/internal/delivery/http/response"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"
	"foodies/internal/infra/localstore"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for login and registration.
type AuthHandler struct {
	store    *localstore.Store
	tokenSvc service.TokenService
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(store *localstore.Store, tokenSvc service.TokenService, hasher service.PasswordHasher, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		store:    store,
		tokenSvc: tokenSvc,
		hasher:   hasher,
		logger:   logger,
	}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	stored, err := h.store.FindUserByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}
	if stored == nil || !h.hasher.Check(req.Password, stored.PasswordHash) {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := h.tokenSvc.Generate(&stored.User)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, service.AuthSession{Token: token, User: &stored.User}, "Login successful")
}

// Register handles the account creation request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	existing, err := h.store.FindUserByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}
	if existing != nil {
		return errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	user := localstore.StoredUser{
		User: entity.User{
			ID:     "user_" + uuid.NewString(),
			Name:   req.Name,
			Email:  req.Email,
			Mobile: req.Mobile,
			Role:   entity.RoleUser,
		},
		PasswordHash: hash,
	}
	if err := h.store.AppendUser(c.Request().Context(), user); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.tokenSvc.Generate(&user.User)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, service.AuthSession{Token: token, User: &user.User}, "User registered successfully")
}
