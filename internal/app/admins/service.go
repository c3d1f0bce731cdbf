package admins

import (
	"context"
	"errors"
	"fmt"

	"gigbook/internal/auth"
	"gigbook/internal/models"
	"gigbook/internal/store"
	"gigbook/internal/validation"
)

// ErrInvalidCredentials covers unknown, inactive and wrong-password logins alike.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Store describes admin persistence.
type Store interface {
	AdminByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	TouchAdminLogin(ctx context.Context, id int64) error
	EnsureAdmin(ctx context.Context, username string, passwordHash []byte) (bool, error)
}

// TokenIssuer signs login tokens.
type TokenIssuer interface {
	Issue(subjectID int64, role string) (string, error)
}

// LoginInput is the admin login request body.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the authenticated admin and their token.
type LoginResult struct {
	Admin *models.AdminUser
	Token string
}

// Service exposes admin login and bootstrap.
type Service interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Bootstrap(ctx context.Context, username, password string) (bool, error)
}

type service struct {
	store  Store
	tokens TokenIssuer
}

// New constructs an admins Service.
func New(store Store, tokens TokenIssuer) Service {
	return &service{store: store, tokens: tokens}
}

func (s *service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	admin, err := s.store.AdminByUsername(ctx, in.Username)
	if errors.Is(err, store.ErrAdminNotFound) {
		auth.BurnPasswordCheck(in.Password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(admin.PasswordHash, in.Password) || !admin.Active {
		return nil, ErrInvalidCredentials
	}

	if err := s.store.TouchAdminLogin(ctx, admin.ID); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(admin.ID, auth.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Admin: admin, Token: token}, nil
}

// Bootstrap creates the configured admin on first start. An existing
// account is left untouched.
func (s *service) Bootstrap(ctx context.Context, username, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	return s.store.EnsureAdmin(ctx, username, hash)
}
