package tickets

import (
	"context"
	"errors"

	"gigbook/internal/events"
	"gigbook/internal/metrics"
	"gigbook/internal/models"
	"gigbook/internal/store"
	"gigbook/internal/validation"
)

// Store defines persistence operations for tickets
type Store interface {
	ListTicketsByAttendee(ctx context.Context, attendeeID int64) ([]*models.TicketWithDetails, error)
	GetTicketForConcert(ctx context.Context, concertID, attendeeID int64) (*models.TicketWithDetails, error)
	CreateTicket(ctx context.Context, req models.TicketRequest) (*models.TicketWithDetails, error)
	DeleteTicket(ctx context.Context, id int64) (*models.Ticket, error)
}

// Service coordinates ticket sales
type Service interface {
	ListByAttendee(ctx context.Context, attendeeID int64) ([]*models.TicketWithDetails, error)
	GetForConcert(ctx context.Context, concertID, attendeeID int64) (*models.TicketWithDetails, error)
	Purchase(ctx context.Context, req models.TicketRequest) (*models.TicketWithDetails, error)
	Cancel(ctx context.Context, id int64) error
}

type service struct {
	store     Store
	publisher events.Publisher
}

// New constructs a tickets Service. A nil publisher disables events.
func New(store Store, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &service{store: store, publisher: publisher}
}

func (s *service) ListByAttendee(ctx context.Context, attendeeID int64) ([]*models.TicketWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListTicketsByAttendee(ctx, attendeeID)
}

func (s *service) GetForConcert(ctx context.Context, concertID, attendeeID int64) (*models.TicketWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetTicketForConcert(ctx, concertID, attendeeID)
}

func (s *service) Purchase(ctx context.Context, req models.TicketRequest) (*models.TicketWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	ticket, err := s.store.CreateTicket(ctx, req)
	switch {
	case errors.Is(err, store.ErrSoldOut):
		metrics.TicketsRejected.WithLabelValues("sold_out").Inc()
		return nil, err
	case errors.Is(err, store.ErrConcertCanceled):
		metrics.TicketsRejected.WithLabelValues("canceled").Inc()
		return nil, err
	case err != nil:
		return nil, err
	}

	metrics.TicketsIssued.Inc()
	events.Emit(ctx, s.publisher, events.TicketPurchased, ticket)
	return ticket, nil
}

func (s *service) Cancel(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ticket, err := s.store.DeleteTicket(ctx, id)
	if err != nil {
		return err
	}

	events.Emit(ctx, s.publisher, events.TicketCanceled, ticket)
	return nil
}
