package admins

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/auth"
	"gigbook/internal/models"
	"gigbook/internal/store"
	"gigbook/internal/validation"
)

type stubStore struct {
	admins  map[string]*models.AdminUser
	touched []int64
}

func (s *stubStore) AdminByUsername(_ context.Context, username string) (*models.AdminUser, error) {
	a, ok := s.admins[username]
	if !ok {
		return nil, store.ErrAdminNotFound
	}
	return a, nil
}

func (s *stubStore) TouchAdminLogin(_ context.Context, id int64) error {
	s.touched = append(s.touched, id)
	return nil
}

func (s *stubStore) EnsureAdmin(_ context.Context, username string, hash []byte) (bool, error) {
	if _, ok := s.admins[username]; ok {
		return false, nil
	}
	s.admins[username] = &models.AdminUser{ID: int64(len(s.admins) + 1), Username: username, PasswordHash: hash, Active: true}
	return true, nil
}

func TestLoginActiveAndInactive(t *testing.T) {
	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)

	st := &stubStore{admins: map[string]*models.AdminUser{
		"root":    {ID: 1, Username: "root", PasswordHash: hash, Active: true},
		"retired": {ID: 2, Username: "retired", PasswordHash: hash, Active: false},
	}}
	svc := New(st, auth.NewTokenManager("0123456789abcdef", time.Hour))
	ctx := context.Background()

	res, err := svc.Login(ctx, LoginInput{Username: "root", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Admin.ID)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, []int64{1}, st.touched)

	_, err = svc.Login(ctx, LoginInput{Username: "retired", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Username: "root", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Equal(t, []int64{1}, st.touched, "failed logins must not update last login")
}

func TestBootstrapIsIdempotent(t *testing.T) {
	st := &stubStore{admins: map[string]*models.AdminUser{}}
	svc := New(st, auth.NewTokenManager("0123456789abcdef", time.Hour))

	created, err := svc.Bootstrap(context.Background(), "root", "pw")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Bootstrap(context.Background(), "root", "other")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestBootstrapRejectsOverlongPassword(t *testing.T) {
	st := &stubStore{admins: map[string]*models.AdminUser{}}
	svc := New(st, auth.NewTokenManager("0123456789abcdef", time.Hour))

	created, err := svc.Bootstrap(context.Background(), "root", strings.Repeat("x", 73))
	var verr *validation.RequestValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.False(t, created)
	assert.Empty(t, st.admins)
}
