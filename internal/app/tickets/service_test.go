package tickets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/events"
	"gigbook/internal/models"
	"gigbook/internal/store"
	"gigbook/internal/validation"
)

// limitStore sells up to limit tickets for concert 1.
type limitStore struct {
	limit   int
	sold    []*models.TicketWithDetails
	deleted []int64
}

func (s *limitStore) ListTicketsByAttendee(_ context.Context, attendeeID int64) ([]*models.TicketWithDetails, error) {
	out := []*models.TicketWithDetails{}
	for _, t := range s.sold {
		if t.AttendeeID == attendeeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *limitStore) GetTicketForConcert(_ context.Context, concertID, attendeeID int64) (*models.TicketWithDetails, error) {
	for _, t := range s.sold {
		if t.ConcertID == concertID && t.AttendeeID == attendeeID {
			return t, nil
		}
	}
	return nil, store.ErrTicketNotFound
}

func (s *limitStore) CreateTicket(_ context.Context, req models.TicketRequest) (*models.TicketWithDetails, error) {
	if req.ConcertID != 1 {
		return nil, store.ErrConcertNotFound
	}
	if models.SoldOut(len(s.sold), s.limit) {
		return nil, store.ErrSoldOut
	}
	t := &models.TicketWithDetails{Ticket: models.Ticket{
		ID: int64(len(s.sold) + 1), ConcertID: req.ConcertID, AttendeeID: req.AttendeeID, Price: 30,
		Status: models.TicketStatusActive,
	}}
	s.sold = append(s.sold, t)
	return t, nil
}

func (s *limitStore) DeleteTicket(_ context.Context, id int64) (*models.Ticket, error) {
	for i, t := range s.sold {
		if t.ID == id {
			s.sold = append(s.sold[:i], s.sold[i+1:]...)
			s.deleted = append(s.deleted, id)
			return &t.Ticket, nil
		}
	}
	return nil, store.ErrTicketNotFound
}

type recordingPublisher struct{ keys []string }

func (r *recordingPublisher) Publish(_ context.Context, key string, _ any) error {
	r.keys = append(r.keys, key)
	return nil
}
func (r *recordingPublisher) Close() error { return nil }

func TestPurchaseUntilSoldOut(t *testing.T) {
	st := &limitStore{limit: 2}
	pub := &recordingPublisher{}
	svc := New(st, pub)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Purchase(ctx, models.TicketRequest{ConcertID: 1, AttendeeID: int64(i + 1)})
		require.NoError(t, err)
	}

	_, err := svc.Purchase(ctx, models.TicketRequest{ConcertID: 1, AttendeeID: 3})
	assert.ErrorIs(t, err, store.ErrSoldOut)
	assert.ErrorIs(t, err, store.ErrInvalidState)
	assert.Equal(t, []string{events.TicketPurchased, events.TicketPurchased}, pub.keys)
}

func TestPurchaseValidation(t *testing.T) {
	svc := New(&limitStore{limit: 1}, nil)

	_, err := svc.Purchase(context.Background(), models.TicketRequest{ConcertID: -1, AttendeeID: 1})
	var verr *validation.RequestValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "concertId", verr.Fields[0].Field)

	_, err = svc.Purchase(context.Background(), models.TicketRequest{AttendeeID: 1})
	assert.True(t, errors.As(err, &verr))
}

func TestCancelPublishes(t *testing.T) {
	st := &limitStore{limit: 1}
	pub := &recordingPublisher{}
	svc := New(st, pub)
	ctx := context.Background()

	ticket, err := svc.Purchase(ctx, models.TicketRequest{ConcertID: 1, AttendeeID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, ticket.ID))
	assert.ErrorIs(t, svc.Cancel(ctx, ticket.ID), store.ErrNotFound)
	assert.Equal(t, []string{events.TicketPurchased, events.TicketCanceled}, pub.keys)
}
