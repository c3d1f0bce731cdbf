package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gigbook/internal/models"
)

// CreateAttendee registers an attendee. The contact check and insert share a
// transaction; the unique index on LOWER(contact_info) backs it up.
func (s *Store) CreateAttendee(ctx context.Context, attendee *models.Attendee) (*models.Attendee, error) {
	attendee.ContactInfo = strings.TrimSpace(attendee.ContactInfo)

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		taken, err := exists(ctx, tx, `
			SELECT 1 FROM attendees WHERE LOWER(contact_info) = LOWER($1)
		`, attendee.ContactInfo)
		if err != nil {
			return fmt.Errorf("check contact: %w", err)
		}
		if taken {
			return ErrContactExists
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO attendees (name, contact_info, phone, password_hash)
			VALUES ($1, $2, NULLIF($3, ''), $4)
			RETURNING id, loyalty_points
		`, attendee.Name, attendee.ContactInfo, attendee.Phone, attendee.PasswordHash,
		).Scan(&attendee.ID, &attendee.LoyaltyPoints)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrContactExists
			}
			return fmt.Errorf("insert attendee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return attendee, nil
}

// AttendeeByContact looks up an attendee by contact info, ignoring case.
func (s *Store) AttendeeByContact(ctx context.Context, contact string) (*models.Attendee, error) {
	return s.scanAttendee(s.db.QueryRowContext(ctx, `
		SELECT id, name, contact_info, COALESCE(phone, ''), loyalty_points, password_hash
		FROM attendees
		WHERE LOWER(contact_info) = LOWER($1)
	`, strings.TrimSpace(contact)))
}

// GetAttendee retrieves an attendee by ID.
func (s *Store) GetAttendee(ctx context.Context, id int64) (*models.Attendee, error) {
	return s.scanAttendee(s.db.QueryRowContext(ctx, `
		SELECT id, name, contact_info, COALESCE(phone, ''), loyalty_points, password_hash
		FROM attendees
		WHERE id = $1
	`, id))
}

func (s *Store) scanAttendee(row *sql.Row) (*models.Attendee, error) {
	var a models.Attendee
	err := row.Scan(&a.ID, &a.Name, &a.ContactInfo, &a.Phone, &a.LoyaltyPoints, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttendeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select attendee: %w", err)
	}
	return &a, nil
}
