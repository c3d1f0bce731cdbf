package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/lib/pq"

	"gigbook/internal/models"
)

// AttendeeDashboard gathers an attendee's profile statistics, upcoming
// tickets and past tickets with the feedback they left.
func (s *Store) AttendeeDashboard(ctx context.Context, attendeeID int64) (*models.AttendeeDashboard, error) {
	attendee, err := s.GetAttendee(ctx, attendeeID)
	if err != nil {
		return nil, err
	}

	dash := &models.AttendeeDashboard{
		Profile: models.DashboardProfile{
			ID:            attendee.ID,
			Name:          attendee.Name,
			ContactInfo:   attendee.ContactInfo,
			LoyaltyPoints: attendee.LoyaltyPoints,
		},
		UpcomingTickets: []models.TicketWithDetails{},
		PastTickets:     []models.PastTicket{},
	}

	rows, err := s.db.QueryContext(ctx, `SELECT`+ticketColumns+`,
		c.concert_date >= CURRENT_DATE`+ticketFrom+`
		WHERE t.attendee_id = $1 AND t.status = $2
		ORDER BY c.concert_date ASC, t.id ASC
	`, attendeeID, models.TicketStatusActive)
	if err != nil {
		return nil, fmt.Errorf("select dashboard tickets: %w", err)
	}
	defer rows.Close()

	var (
		genres     []string
		pastIDs    []int64
		pastByConc = map[int64][]int{}
	)
	for rows.Next() {
		var upcoming bool
		t, err := scanTicket(rows, &upcoming)
		if err != nil {
			return nil, fmt.Errorf("scan dashboard ticket: %w", err)
		}

		dash.Profile.TotalTickets++
		dash.Profile.TotalSpent += t.Price
		genres = append(genres, t.ArtistGenre)

		if upcoming {
			dash.UpcomingTickets = append(dash.UpcomingTickets, *t)
			continue
		}
		if _, seen := pastByConc[t.ConcertID]; !seen {
			pastIDs = append(pastIDs, t.ConcertID)
		}
		pastByConc[t.ConcertID] = append(pastByConc[t.ConcertID], len(dash.PastTickets))
		dash.PastTickets = append(dash.PastTickets, models.PastTicket{TicketWithDetails: *t})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dashboard tickets: %w", err)
	}
	rows.Close()

	dash.Profile.FavoriteGenre = FavoriteGenre(genres)

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM feedback WHERE attendee_id = $1
	`, attendeeID).Scan(&dash.Profile.TotalReviews); err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	if len(pastIDs) == 0 {
		return dash, nil
	}

	fbRows, err := s.db.QueryContext(ctx, `
		SELECT id, concert_id, attendee_id, rating, comments, created_at
		FROM feedback
		WHERE attendee_id = $1 AND concert_id = ANY($2)
		ORDER BY created_at DESC, id DESC
	`, attendeeID, pq.Array(pastIDs))
	if err != nil {
		return nil, fmt.Errorf("select dashboard feedback: %w", err)
	}
	defer fbRows.Close()

	for fbRows.Next() {
		var f models.Feedback
		if err := fbRows.Scan(&f.ID, &f.ConcertID, &f.AttendeeID, &f.Rating, &f.Comments, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dashboard feedback: %w", err)
		}
		f.AttendeeName = attendee.Name
		for _, idx := range pastByConc[f.ConcertID] {
			// Newest first, so the first match per concert wins.
			if dash.PastTickets[idx].Feedback == nil {
				fb := f
				dash.PastTickets[idx].Feedback = &fb
			}
		}
	}
	if err := fbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dashboard feedback: %w", err)
	}

	return dash, nil
}

// FavoriteGenre returns the most frequent genre, breaking ties
// alphabetically. Empty input yields "".
func FavoriteGenre(genres []string) string {
	counts := map[string]int{}
	for _, g := range genres {
		if g != "" {
			counts[g]++
		}
	}

	names := make([]string, 0, len(counts))
	for g := range counts {
		names = append(names, g)
	}
	sort.Strings(names)

	best, bestCount := "", 0
	for _, g := range names {
		if counts[g] > bestCount {
			best, bestCount = g, counts[g]
		}
	}
	return best
}
