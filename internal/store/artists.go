package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigbook/internal/models"
)

const artistSelect = `
	SELECT a.id, a.name, a.genre, a.contact_info, a.availability,
	       a.social_media_link, a.manager_id, COALESCE(m.name, '')
	FROM artists a
	LEFT JOIN staff m ON m.id = a.manager_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtist(row rowScanner) (*models.Artist, error) {
	var (
		a         models.Artist
		managerID sql.NullInt64
	)
	err := row.Scan(&a.ID, &a.Name, &a.Genre, &a.ContactInfo, &a.Availability,
		&a.SocialMediaLink, &managerID, &a.ManagerName)
	if err != nil {
		return nil, err
	}
	if managerID.Valid {
		a.ManagerID = &managerID.Int64
	}
	return &a, nil
}

// ListArtists returns all artists with their manager's name.
func (s *Store) ListArtists(ctx context.Context) ([]*models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, artistSelect+` ORDER BY a.name ASC, a.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	artists := []*models.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

// GetArtist retrieves an artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	return s.getArtist(ctx, s.db, id)
}

func (s *Store) getArtist(ctx context.Context, q queryer, id int64) (*models.Artist, error) {
	a, err := scanArtist(q.QueryRowContext(ctx, artistSelect+` WHERE a.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select artist: %w", err)
	}
	return a, nil
}

// CreateArtist adds an artist. A manager, when given, must be an existing
// staff member.
func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	var created *models.Artist
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if artist.ManagerID != nil {
			ok, err := exists(ctx, tx, `SELECT 1 FROM staff WHERE id = $1`, *artist.ManagerID)
			if err != nil {
				return fmt.Errorf("check manager: %w", err)
			}
			if !ok {
				return ErrManagerNotFound
			}
		}

		var id int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, genre, contact_info, availability, social_media_link, manager_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, artist.Name, artist.Genre, artist.ContactInfo, artist.Availability,
			artist.SocialMediaLink, artist.ManagerID).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert artist: %w", MapInsertError(err))
		}

		created, err = s.getArtist(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteArtist removes an artist with no concerts.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, `DELETE FROM artists WHERE id = $1`, id, ErrArtistNotFound)
}
