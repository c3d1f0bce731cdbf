package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigbook/internal/models"
)

// ListSponsorships returns sponsorships, all of them or only one concert's.
func (s *Store) ListSponsorships(ctx context.Context, concertID *int64) ([]*models.Sponsorship, error) {
	query := `
		SELECT sp.id, sp.name, sp.contact_info, sp.contribution_amt::float8, sp.concert_id, c.name
		FROM sponsorships sp
		INNER JOIN concerts c ON c.id = sp.concert_id
	`
	var args []any
	if concertID != nil {
		query += ` WHERE sp.concert_id = $1`
		args = append(args, *concertID)
	}
	query += ` ORDER BY sp.contribution_amt DESC, sp.id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select sponsorships: %w", err)
	}
	defer rows.Close()

	sponsorships := []*models.Sponsorship{}
	for rows.Next() {
		var sp models.Sponsorship
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.ContactInfo, &sp.ContributionAmt,
			&sp.ConcertID, &sp.ConcertName); err != nil {
			return nil, fmt.Errorf("scan sponsorship: %w", err)
		}
		sponsorships = append(sponsorships, &sp)
	}
	return sponsorships, rows.Err()
}

// CreateSponsorship attaches a sponsor to an existing concert.
func (s *Store) CreateSponsorship(ctx context.Context, sp *models.Sponsorship) (*models.Sponsorship, error) {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			SELECT name FROM concerts WHERE id = $1
		`, sp.ConcertID).Scan(&sp.ConcertName)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrConcertNotFound
		}
		if err != nil {
			return fmt.Errorf("check concert: %w", err)
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO sponsorships (name, contact_info, contribution_amt, concert_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, sp.Name, sp.ContactInfo, sp.ContributionAmt, sp.ConcertID).Scan(&sp.ID)
		if err != nil {
			return fmt.Errorf("insert sponsorship: %w", MapInsertError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sp, nil
}

// DeleteSponsorship removes a sponsorship.
func (s *Store) DeleteSponsorship(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, `DELETE FROM sponsorships WHERE id = $1`, id, ErrSponsorNotFound)
}
