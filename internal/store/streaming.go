package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigbook/internal/models"
)

// ListPlatforms returns streaming platforms ordered by streaming date.
func (s *Store) ListPlatforms(ctx context.Context) ([]*models.StreamingPlatform, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, url, to_char(streaming_date, 'YYYY-MM-DD')
		FROM streaming_platforms
		ORDER BY streaming_date ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select platforms: %w", err)
	}
	defer rows.Close()

	platforms := []*models.StreamingPlatform{}
	for rows.Next() {
		var p models.StreamingPlatform
		if err := rows.Scan(&p.ID, &p.Name, &p.URL, &p.StreamingDate); err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		platforms = append(platforms, &p)
	}
	return platforms, rows.Err()
}

// GetPlatform retrieves a streaming platform by ID.
func (s *Store) GetPlatform(ctx context.Context, id int64) (*models.StreamingPlatform, error) {
	var p models.StreamingPlatform
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, url, to_char(streaming_date, 'YYYY-MM-DD')
		FROM streaming_platforms
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.URL, &p.StreamingDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlatformNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select platform: %w", err)
	}
	return &p, nil
}

// CreatePlatform adds a streaming platform.
func (s *Store) CreatePlatform(ctx context.Context, p *models.StreamingPlatform) (*models.StreamingPlatform, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO streaming_platforms (name, url, streaming_date)
		VALUES ($1, $2, $3::date)
		RETURNING id
	`, p.Name, p.URL, p.StreamingDate).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("insert platform: %w", MapInsertError(err))
	}
	return p, nil
}

// UpdatePlatform replaces a streaming platform's fields.
func (s *Store) UpdatePlatform(ctx context.Context, id int64, p *models.StreamingPlatform) (*models.StreamingPlatform, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE streaming_platforms
		SET name = $1, url = $2, streaming_date = $3::date
		WHERE id = $4
	`, p.Name, p.URL, p.StreamingDate, id)
	if err != nil {
		return nil, fmt.Errorf("update platform: %w", MapInsertError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPlatformNotFound
	}
	p.ID = id
	return p, nil
}

// DeletePlatform removes a platform; concerts streaming on it keep running
// without one.
func (s *Store) DeletePlatform(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, `DELETE FROM streaming_platforms WHERE id = $1`, id, ErrPlatformNotFound)
}
