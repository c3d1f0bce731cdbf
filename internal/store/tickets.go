package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigbook/internal/models"
)

const (
	ticketColumns = `
		t.id, t.price::float8, t.purchase_date, t.status, t.concert_id, t.attendee_id,
		c.name, to_char(c.concert_date, 'YYYY-MM-DD'), c.concert_time,
		v.name, a.name, a.genre`
	ticketFrom = `
	FROM tickets t
	INNER JOIN concerts c ON c.id = t.concert_id
	INNER JOIN venues v ON v.id = c.venue_id
	INNER JOIN artists a ON a.id = c.artist_id
`
	ticketSelect = `SELECT` + ticketColumns + ticketFrom
)

func scanTicket(row rowScanner, extra ...any) (*models.TicketWithDetails, error) {
	var t models.TicketWithDetails
	dest := []any{
		&t.ID, &t.Price, &t.PurchaseDate, &t.Status, &t.ConcertID, &t.AttendeeID,
		&t.ConcertName, &t.ConcertDate, &t.ConcertTime,
		&t.VenueName, &t.ArtistName, &t.ArtistGenre,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTicketsByAttendee returns an attendee's tickets ordered by concert date.
func (s *Store) ListTicketsByAttendee(ctx context.Context, attendeeID int64) ([]*models.TicketWithDetails, error) {
	rows, err := s.db.QueryContext(ctx, ticketSelect+`
		WHERE t.attendee_id = $1
		ORDER BY c.concert_date ASC, t.id ASC
	`, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("select tickets: %w", err)
	}
	defer rows.Close()

	tickets := []*models.TicketWithDetails{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// GetTicketForConcert returns the attendee's earliest active ticket for the
// concert.
func (s *Store) GetTicketForConcert(ctx context.Context, concertID, attendeeID int64) (*models.TicketWithDetails, error) {
	t, err := scanTicket(s.db.QueryRowContext(ctx, ticketSelect+`
		WHERE t.concert_id = $1 AND t.attendee_id = $2 AND t.status = $3
		ORDER BY t.id ASC
		LIMIT 1
	`, concertID, attendeeID, models.TicketStatusActive))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select ticket: %w", err)
	}
	return t, nil
}

// CreateTicket issues a ticket. The concert row stays locked from the sold
// count until commit so concurrent purchases cannot exceed the limit.
func (s *Store) CreateTicket(ctx context.Context, req models.TicketRequest) (*models.TicketWithDetails, error) {
	var created *models.TicketWithDetails
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var (
			price  float64
			limit  int
			status string
		)
		err := tx.QueryRowContext(ctx, `
			SELECT price::float8, ticket_sales_limit, status
			FROM concerts
			WHERE id = $1
			FOR UPDATE
		`, req.ConcertID).Scan(&price, &limit, &status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrConcertNotFound
		}
		if err != nil {
			return fmt.Errorf("lock concert: %w", err)
		}
		if models.ConcertStatus(status) == models.ConcertCanceled {
			return ErrConcertCanceled
		}

		ok, err := exists(ctx, tx, `SELECT 1 FROM attendees WHERE id = $1`, req.AttendeeID)
		if err != nil {
			return fmt.Errorf("check attendee: %w", err)
		}
		if !ok {
			return ErrAttendeeNotFound
		}

		var sold int
		if err := tx.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM tickets WHERE concert_id = $1 AND status = $2
		`, req.ConcertID, models.TicketStatusActive).Scan(&sold); err != nil {
			return fmt.Errorf("count tickets: %w", err)
		}
		if models.SoldOut(sold, limit) {
			return ErrSoldOut
		}

		var id int64
		err = tx.QueryRowContext(ctx, `
			INSERT INTO tickets (price, status, concert_id, attendee_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, price, models.TicketStatusActive, req.ConcertID, req.AttendeeID).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert ticket: %w", MapInsertError(err))
		}

		created, err = scanTicket(tx.QueryRowContext(ctx, ticketSelect+` WHERE t.id = $1`, id))
		if err != nil {
			return fmt.Errorf("select ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteTicket removes a ticket and returns what was removed.
func (s *Store) DeleteTicket(ctx context.Context, id int64) (*models.Ticket, error) {
	var t models.Ticket
	err := s.db.QueryRowContext(ctx, `
		DELETE FROM tickets
		WHERE id = $1
		RETURNING id, price::float8, purchase_date, status, concert_id, attendee_id
	`, id).Scan(&t.ID, &t.Price, &t.PurchaseDate, &t.Status, &t.ConcertID, &t.AttendeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete ticket: %w", err)
	}
	return &t, nil
}
