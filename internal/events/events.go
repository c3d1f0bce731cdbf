// Package events publishes domain events to a RabbitMQ topic exchange.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gigbook/internal/logging"
)

// Routing keys.
const (
	ConcertCreated    = "concert.created"
	ConcertDeleted    = "concert.deleted"
	TicketPurchased   = "ticket.purchased"
	TicketCanceled    = "ticket.canceled"
	FeedbackSubmitted = "feedback.submitted"
)

// Event is the envelope every message body carries.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

// NewEvent wraps data in an envelope with a fresh id.
func NewEvent(routingKey string, data any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       routingKey,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Publisher hands events to a broker.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, data any) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
func (Noop) Close() error                               { return nil }

// Emit publishes best-effort: a failure is logged and never reaches the
// caller, whose database work has already committed.
func Emit(ctx context.Context, p Publisher, routingKey string, data any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, routingKey, data); err != nil {
		logging.WithContext(ctx).Warn().
			Err(err).
			Str("routing_key", routingKey).
			Msg("event not published")
	}
}
