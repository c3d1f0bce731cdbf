package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigbook/internal/models"
)

const venueColumns = `id, name, location, capacity, availability_schedule, facilities`

// ListVenues returns all venues ordered by name.
func (s *Store) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	venues := []*models.Venue{}
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Capacity, &v.Schedule, &v.Facilities); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, &v)
	}
	return venues, rows.Err()
}

// GetVenue retrieves a venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	var v models.Venue
	err := s.db.QueryRowContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE id = $1
	`, id).Scan(&v.ID, &v.Name, &v.Location, &v.Capacity, &v.Schedule, &v.Facilities)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select venue: %w", err)
	}
	return &v, nil
}

// CreateVenue adds a new venue.
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO venues (name, location, capacity, availability_schedule, facilities)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, venue.Name, venue.Location, venue.Capacity, venue.Schedule, venue.Facilities,
	).Scan(&venue.ID)
	if err != nil {
		return nil, fmt.Errorf("insert venue: %w", MapInsertError(err))
	}
	return venue, nil
}

// DeleteVenue removes a venue. Venues still hosting concerts cannot be removed.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, `DELETE FROM venues WHERE id = $1`, id, ErrVenueNotFound)
}
