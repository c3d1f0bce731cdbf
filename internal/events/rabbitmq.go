package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"gigbook/internal/metrics"
)

const (
	exchangeKind   = "topic"
	publishTimeout = 2 * time.Second
)

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes JSON events to a durable topic exchange. Calls
// go through a circuit breaker so an unreachable broker fails fast.
type RabbitPublisher struct {
	conn     io.Closer
	channel  amqpChannel
	exchange string
	cb       *gobreaker.CircuitBreaker[struct{}]
	logger   zerolog.Logger
}

// NewRabbitPublisher dials url and declares exchange.
func NewRabbitPublisher(url, exchange string, logger zerolog.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return newRabbitPublisher(conn, ch, exchange, logger), nil
}

func newRabbitPublisher(conn io.Closer, ch amqpChannel, exchange string, logger zerolog.Logger) *RabbitPublisher {
	p := &RabbitPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}
	p.cb = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "rabbitmq-publisher",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			p.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("publisher circuit breaker state change")
		},
	})
	return p
}

// Publish marshals data into an Event and sends it with routingKey.
func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	body, err := json.Marshal(NewEvent(routingKey, data))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	_, err = p.cb.Execute(func() (struct{}, error) {
		return struct{}{}, p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	})

	switch {
	case err == nil:
		metrics.EventsPublished.WithLabelValues(routingKey, "ok").Inc()
		p.logger.Debug().Str("routing_key", routingKey).Msg("event published")
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.EventsPublished.WithLabelValues(routingKey, "breaker_open").Inc()
		return fmt.Errorf("publish %s: %w", routingKey, err)
	default:
		metrics.EventsPublished.WithLabelValues(routingKey, "error").Inc()
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
}

// Close releases the channel and connection.
func (p *RabbitPublisher) Close() error {
	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
