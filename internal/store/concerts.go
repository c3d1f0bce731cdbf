package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gigbook/internal/models"
)

const concertSelect = `
	SELECT
		c.id, c.name, to_char(c.concert_date, 'YYYY-MM-DD'), c.concert_time,
		c.venue_id, c.artist_id, c.manager_id, c.ticket_sales_limit,
		c.price::float8, c.status, c.description, c.streaming_id,
		v.name, v.location, a.name, a.genre, m.name,
		COALESCE(p.name, ''), COALESCE(p.url, '')
	FROM concerts c
	INNER JOIN venues v ON v.id = c.venue_id
	INNER JOIN artists a ON a.id = c.artist_id
	INNER JOIN staff m ON m.id = c.manager_id
	LEFT JOIN streaming_platforms p ON p.id = c.streaming_id
`

func scanConcert(row rowScanner) (*models.ConcertWithDetails, error) {
	var (
		c           models.ConcertWithDetails
		streamingID sql.NullInt64
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Date, &c.Time,
		&c.VenueID, &c.ArtistID, &c.ManagerID, &c.TicketSalesLimit,
		&c.Price, &c.Status, &c.Description, &streamingID,
		&c.VenueName, &c.VenueLocation, &c.ArtistName, &c.ArtistGenre, &c.ManagerName,
		&c.StreamingName, &c.StreamingURL,
	)
	if err != nil {
		return nil, err
	}
	if streamingID.Valid {
		c.StreamingID = &streamingID.Int64
	}
	return &c, nil
}

// ListConcerts returns concerts ordered by date, optionally filtered.
func (s *Store) ListConcerts(ctx context.Context, filter models.ConcertFilter) ([]*models.ConcertWithDetails, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("c.status = $%d", len(args)))
	}
	if filter.Upcoming {
		where = append(where, "c.concert_date >= CURRENT_DATE")
	}

	query := concertSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.concert_date ASC, c.concert_time ASC, c.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select concerts: %w", err)
	}
	defer rows.Close()

	concerts := []*models.ConcertWithDetails{}
	for rows.Next() {
		c, err := scanConcert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan concert: %w", err)
		}
		concerts = append(concerts, c)
	}
	return concerts, rows.Err()
}

// GetConcert retrieves a single concert by ID with its joined details.
func (s *Store) GetConcert(ctx context.Context, id int64) (*models.ConcertWithDetails, error) {
	return s.getConcert(ctx, s.db, id)
}

func (s *Store) getConcert(ctx context.Context, q queryer, id int64) (*models.ConcertWithDetails, error) {
	c, err := scanConcert(q.QueryRowContext(ctx, concertSelect+" WHERE c.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConcertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select concert: %w", err)
	}
	return c, nil
}

// checkConcertRefs verifies the venue, artist, manager and optional
// streaming platform a concert points at.
func checkConcertRefs(ctx context.Context, q queryer, c *models.Concert) error {
	refs := []struct {
		query    string
		id       int64
		notFound error
	}{
		{`SELECT 1 FROM venues WHERE id = $1`, c.VenueID, ErrVenueNotFound},
		{`SELECT 1 FROM artists WHERE id = $1`, c.ArtistID, ErrArtistNotFound},
		{`SELECT 1 FROM staff WHERE id = $1`, c.ManagerID, ErrManagerNotFound},
	}
	if c.StreamingID != nil {
		refs = append(refs, struct {
			query    string
			id       int64
			notFound error
		}{`SELECT 1 FROM streaming_platforms WHERE id = $1`, *c.StreamingID, ErrPlatformNotFound})
	}

	for _, ref := range refs {
		ok, err := exists(ctx, q, ref.query, ref.id)
		if err != nil {
			return fmt.Errorf("check reference: %w", err)
		}
		if !ok {
			return ref.notFound
		}
	}
	return nil
}

// CreateConcert inserts a concert and returns its joined representation.
func (s *Store) CreateConcert(ctx context.Context, concert *models.Concert) (*models.ConcertWithDetails, error) {
	if concert.Status == "" {
		concert.Status = models.ConcertScheduled
	}

	var created *models.ConcertWithDetails
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := checkConcertRefs(ctx, tx, concert); err != nil {
			return err
		}

		var id int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO concerts (name, concert_date, concert_time, venue_id, artist_id,
			                      manager_id, ticket_sales_limit, price, status,
			                      description, streaming_id)
			VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, concert.Name, concert.Date, concert.Time, concert.VenueID, concert.ArtistID,
			concert.ManagerID, concert.TicketSalesLimit, concert.Price, string(concert.Status),
			concert.Description, concert.StreamingID).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert concert: %w", MapInsertError(err))
		}

		created, err = s.getConcert(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateConcert replaces every editable field of an existing concert. An
// empty status keeps the stored one.
func (s *Store) UpdateConcert(ctx context.Context, id int64, concert *models.Concert) (*models.ConcertWithDetails, error) {
	var updated *models.ConcertWithDetails
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		ok, err := exists(ctx, tx, `SELECT 1 FROM concerts WHERE id = $1 FOR UPDATE`, id)
		if err != nil {
			return fmt.Errorf("lock concert: %w", err)
		}
		if !ok {
			return ErrConcertNotFound
		}
		if err := checkConcertRefs(ctx, tx, concert); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE concerts
			SET name = $1, concert_date = $2::date, concert_time = $3, venue_id = $4,
			    artist_id = $5, manager_id = $6, ticket_sales_limit = $7, price = $8,
			    status = COALESCE(NULLIF($9, ''), status), description = $10, streaming_id = $11
			WHERE id = $12
		`, concert.Name, concert.Date, concert.Time, concert.VenueID, concert.ArtistID,
			concert.ManagerID, concert.TicketSalesLimit, concert.Price, string(concert.Status),
			concert.Description, concert.StreamingID, id)
		if err != nil {
			return fmt.Errorf("update concert: %w", MapInsertError(err))
		}

		updated, err = s.getConcert(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteConcert removes a concert with its tickets, feedback and
// sponsorships. Completed concerts are kept.
func (s *Store) DeleteConcert(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var status string
		err := tx.QueryRowContext(ctx, `
			SELECT status FROM concerts WHERE id = $1 FOR UPDATE
		`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrConcertNotFound
		}
		if err != nil {
			return fmt.Errorf("lock concert: %w", err)
		}
		if models.ConcertStatus(status) == models.ConcertCompleted {
			return ErrConcertCompleted
		}

		return deleteByID(ctx, tx, `DELETE FROM concerts WHERE id = $1`, id, ErrConcertNotFound)
	})
}

// ConcertRevenue sums the prices of the concert's active tickets.
func (s *Store) ConcertRevenue(ctx context.Context, id int64) (*models.ConcertRevenue, error) {
	r := models.ConcertRevenue{ConcertID: id}
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(t.price), 0)::float8
		FROM concerts c
		LEFT JOIN tickets t ON t.concert_id = c.id AND t.status = $2
		WHERE c.id = $1
		GROUP BY c.id
	`, id, models.TicketStatusActive).Scan(&r.Revenue)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConcertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select revenue: %w", err)
	}
	return &r, nil
}

// ConcertSummary reports price, sales, sponsors and revenue for a concert.
func (s *Store) ConcertSummary(ctx context.Context, id int64) (*models.ConcertSummary, error) {
	var sum models.ConcertSummary
	err := s.db.QueryRowContext(ctx, `
		SELECT c.id, c.name, to_char(c.concert_date, 'YYYY-MM-DD'), c.concert_time,
		       c.price::float8, c.ticket_sales_limit,
		       (SELECT COUNT(*) FROM tickets t WHERE t.concert_id = c.id AND t.status = $2),
		       (SELECT COUNT(*) FROM sponsorships sp WHERE sp.concert_id = c.id),
		       (SELECT COALESCE(SUM(t.price), 0)::float8 FROM tickets t
		         WHERE t.concert_id = c.id AND t.status = $2)
		FROM concerts c
		WHERE c.id = $1
	`, id, models.TicketStatusActive).Scan(
		&sum.ConcertID, &sum.Name, &sum.Date, &sum.Time,
		&sum.CurrentPrice, &sum.TicketLimit,
		&sum.TicketsSold, &sum.SponsorCount, &sum.TotalRevenue,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConcertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select summary: %w", err)
	}
	sum.IsSoldOut = models.SoldOut(sum.TicketsSold, sum.TicketLimit)
	return &sum, nil
}

// IncreaseConcertPrice adds increase to the concert price and returns the
// new price.
func (s *Store) IncreaseConcertPrice(ctx context.Context, id int64, increase float64) (float64, error) {
	var price float64
	err := s.db.QueryRowContext(ctx, `
		UPDATE concerts SET price = price + $2
		WHERE id = $1
		RETURNING price::float8
	`, id, increase).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrConcertNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("update price: %w", err)
	}
	return price, nil
}
