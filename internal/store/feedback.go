package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigbook/internal/models"
)

// ListFeedbackByConcert returns a concert's feedback, newest first.
func (s *Store) ListFeedbackByConcert(ctx context.Context, concertID int64) ([]*models.Feedback, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id, f.concert_id, f.attendee_id, f.rating, f.comments, f.created_at, a.name
		FROM feedback f
		INNER JOIN attendees a ON a.id = f.attendee_id
		WHERE f.concert_id = $1
		ORDER BY f.created_at DESC, f.id DESC
	`, concertID)
	if err != nil {
		return nil, fmt.Errorf("select feedback: %w", err)
	}
	defer rows.Close()

	feedback := []*models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.ConcertID, &f.AttendeeID, &f.Rating, &f.Comments,
			&f.CreatedAt, &f.AttendeeName); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		feedback = append(feedback, &f)
	}
	return feedback, rows.Err()
}

// CreateFeedback records an attendee's rating of an existing concert.
func (s *Store) CreateFeedback(ctx context.Context, f *models.Feedback) (*models.Feedback, error) {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, `SELECT 1 FROM concerts WHERE id = $1`, f.ConcertID)
		if err != nil {
			return fmt.Errorf("check concert: %w", err)
		}
		if !ok {
			return ErrConcertNotFound
		}

		err = tx.QueryRowContext(ctx, `
			SELECT name FROM attendees WHERE id = $1
		`, f.AttendeeID).Scan(&f.AttendeeName)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAttendeeNotFound
		}
		if err != nil {
			return fmt.Errorf("check attendee: %w", err)
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO feedback (concert_id, attendee_id, rating, comments)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`, f.ConcertID, f.AttendeeID, f.Rating, f.Comments).Scan(&f.ID, &f.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert feedback: %w", MapInsertError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFeedback removes one feedback entry.
func (s *Store) DeleteFeedback(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, `DELETE FROM feedback WHERE id = $1`, id, ErrFeedbackNotFound)
}
