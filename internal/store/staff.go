package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigbook/internal/models"
)

// ListStaff returns all staff members ordered by name.
func (s *Store) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role
		FROM staff
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select staff: %w", err)
	}
	defer rows.Close()

	staff := []*models.Staff{}
	for rows.Next() {
		var m models.Staff
		if err := rows.Scan(&m.ID, &m.Name, &m.Role); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		staff = append(staff, &m)
	}
	return staff, rows.Err()
}

// GetStaff retrieves a staff member by ID.
func (s *Store) GetStaff(ctx context.Context, id int64) (*models.Staff, error) {
	var m models.Staff
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, role FROM staff WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select staff member: %w", err)
	}
	return &m, nil
}

// CreateStaff adds a staff member.
func (s *Store) CreateStaff(ctx context.Context, member *models.Staff) (*models.Staff, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO staff (name, role) VALUES ($1, $2) RETURNING id
	`, member.Name, member.Role).Scan(&member.ID)
	if err != nil {
		return nil, fmt.Errorf("insert staff member: %w", MapInsertError(err))
	}
	return member, nil
}

// DeleteStaff removes a staff member who no longer manages concerts or artists.
func (s *Store) DeleteStaff(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, `DELETE FROM staff WHERE id = $1`, id, ErrStaffNotFound)
}
