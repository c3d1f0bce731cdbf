package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigbook/internal/models"
)

// AdminByUsername returns the admin account, active or not.
func (s *Store) AdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var (
		a         models.AdminUser
		lastLogin sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, is_active, last_login
		FROM admin_users
		WHERE username = $1
	`, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Active, &lastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select admin: %w", err)
	}
	if lastLogin.Valid {
		a.LastLogin = &lastLogin.Time
	}
	return &a, nil
}

// TouchAdminLogin records a successful login.
func (s *Store) TouchAdminLogin(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE admin_users SET last_login = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// EnsureAdmin inserts an active admin unless the username already exists.
// It reports whether a row was created.
func (s *Store) EnsureAdmin(ctx context.Context, username string, passwordHash []byte) (bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO admin_users (username, password_hash, is_active)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`, username, passwordHash).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert admin: %w", err)
	}
	return true, nil
}
