// Package procedures implements the staff, venue, streaming and concert
// report stores on top of the *_package stored functions.
package procedures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gigbook/internal/models"
	"gigbook/internal/store"
)

// Store calls the database packages installed by the migrations.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// removed maps a function's affected-row count onto notFound.
func removed(n int64, notFound error) error {
	if n == 0 {
		return notFound
	}
	return nil
}

// ListStaff calls staff_package.list_staff.
func (s *Store) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, role FROM staff_package.list_staff()`)
	if err != nil {
		return nil, fmt.Errorf("call list_staff: %w", err)
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

// GetStaff calls staff_package.get_staff.
func (s *Store) GetStaff(ctx context.Context, id int64) (*models.Staff, error) {
	var m models.Staff
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, role FROM staff_package.get_staff($1)
	`, id).Scan(&m.ID, &m.Name, &m.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("call get_staff: %w", err)
	}
	return &m, nil
}

// CreateStaff calls staff_package.add_staff.
func (s *Store) CreateStaff(ctx context.Context, member *models.Staff) (*models.Staff, error) {
	err := s.db.QueryRowContext(ctx, `
		SELECT staff_package.add_staff($1, $2)
	`, member.Name, member.Role).Scan(&member.ID)
	if err != nil {
		return nil, fmt.Errorf("call add_staff: %w", store.MapInsertError(err))
	}
	return member, nil
}

// DeleteStaff calls staff_package.delete_staff.
func (s *Store) DeleteStaff(ctx context.Context, id int64) error {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT staff_package.delete_staff($1)`, id).Scan(&n)
	if err != nil {
		return fmt.Errorf("call delete_staff: %w", store.MapDeleteError(err))
	}
	return removed(n, store.ErrStaffNotFound)
}

// ListVenues calls venues_package.list_venues.
func (s *Store) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, location, capacity, availability_schedule, facilities
		FROM venues_package.list_venues()
	`)
	if err != nil {
		return nil, fmt.Errorf("call list_venues: %w", err)
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

// GetVenue calls venues_package.get_venue.
func (s *Store) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	var v models.Venue
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, location, capacity, availability_schedule, facilities
		FROM venues_package.get_venue($1)
	`, id).Scan(&v.ID, &v.Name, &v.Location, &v.Capacity, &v.Schedule, &v.Facilities)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("call get_venue: %w", err)
	}
	return &v, nil
}

// CreateVenue calls venues_package.add_venue.
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	err := s.db.QueryRowContext(ctx, `
		SELECT venues_package.add_venue($1, $2, $3, $4, $5)
	`, venue.Name, venue.Location, venue.Capacity, venue.Schedule, venue.Facilities).Scan(&venue.ID)
	if err != nil {
		return nil, fmt.Errorf("call add_venue: %w", store.MapInsertError(err))
	}
	return venue, nil
}

// DeleteVenue calls venues_package.delete_venue.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT venues_package.delete_venue($1)`, id).Scan(&n)
	if err != nil {
		return fmt.Errorf("call delete_venue: %w", store.MapDeleteError(err))
	}
	return removed(n, store.ErrVenueNotFound)
}

// ListPlatforms calls streaming_package.list_platforms.
func (s *Store) ListPlatforms(ctx context.Context) ([]*models.StreamingPlatform, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, url, streaming_date FROM streaming_package.list_platforms()
	`)
	if err != nil {
		return nil, fmt.Errorf("call list_platforms: %w", err)
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

// GetPlatform calls streaming_package.get_platform.
func (s *Store) GetPlatform(ctx context.Context, id int64) (*models.StreamingPlatform, error) {
	var p models.StreamingPlatform
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, url, streaming_date FROM streaming_package.get_platform($1)
	`, id).Scan(&p.ID, &p.Name, &p.URL, &p.StreamingDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrPlatformNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("call get_platform: %w", err)
	}
	return &p, nil
}

// CreatePlatform calls streaming_package.add_platform.
func (s *Store) CreatePlatform(ctx context.Context, p *models.StreamingPlatform) (*models.StreamingPlatform, error) {
	err := s.db.QueryRowContext(ctx, `
		SELECT streaming_package.add_platform($1, $2, $3::date)
	`, p.Name, p.URL, p.StreamingDate).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("call add_platform: %w", store.MapInsertError(err))
	}
	return p, nil
}

// UpdatePlatform calls streaming_package.update_platform.
func (s *Store) UpdatePlatform(ctx context.Context, id int64, p *models.StreamingPlatform) (*models.StreamingPlatform, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `
		SELECT streaming_package.update_platform($1, $2, $3, $4::date)
	`, id, p.Name, p.URL, p.StreamingDate).Scan(&n)
	if err != nil {
		return nil, fmt.Errorf("call update_platform: %w", store.MapInsertError(err))
	}
	if err := removed(n, store.ErrPlatformNotFound); err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// DeletePlatform calls streaming_package.delete_platform.
func (s *Store) DeletePlatform(ctx context.Context, id int64) error {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT streaming_package.delete_platform($1)`, id).Scan(&n)
	if err != nil {
		return fmt.Errorf("call delete_platform: %w", store.MapDeleteError(err))
	}
	return removed(n, store.ErrPlatformNotFound)
}

// ConcertRevenue calls concert_package.revenue, which yields NULL for an
// unknown concert.
func (s *Store) ConcertRevenue(ctx context.Context, id int64) (*models.ConcertRevenue, error) {
	var revenue sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT concert_package.revenue($1)::float8
	`, id).Scan(&revenue)
	if err != nil {
		return nil, fmt.Errorf("call revenue: %w", err)
	}
	if !revenue.Valid {
		return nil, store.ErrConcertNotFound
	}
	return &models.ConcertRevenue{ConcertID: id, Revenue: revenue.Float64}, nil
}

// ConcertSummary calls concert_package.summary.
func (s *Store) ConcertSummary(ctx context.Context, id int64) (*models.ConcertSummary, error) {
	var sum models.ConcertSummary
	err := s.db.QueryRowContext(ctx, `
		SELECT concert_id, name, concert_date, concert_time, current_price::float8,
		       ticket_limit, tickets_sold, sponsor_count, total_revenue::float8
		FROM concert_package.summary($1)
	`, id).Scan(
		&sum.ConcertID, &sum.Name, &sum.Date, &sum.Time, &sum.CurrentPrice,
		&sum.TicketLimit, &sum.TicketsSold, &sum.SponsorCount, &sum.TotalRevenue,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrConcertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("call summary: %w", err)
	}
	sum.IsSoldOut = models.SoldOut(sum.TicketsSold, sum.TicketLimit)
	return &sum, nil
}

// IncreaseConcertPrice calls concert_package.increase_price.
func (s *Store) IncreaseConcertPrice(ctx context.Context, id int64, increase float64) (float64, error) {
	var price sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT concert_package.increase_price($1, $2)::float8
	`, id, increase).Scan(&price)
	if err != nil {
		return 0, fmt.Errorf("call increase_price: %w", err)
	}
	if !price.Valid {
		return 0, store.ErrConcertNotFound
	}
	return price.Float64, nil
}
