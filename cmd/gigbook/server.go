package main

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"gigbook/internal/app/admins"
	"gigbook/internal/app/artists"
	"gigbook/internal/app/attendees"
	"gigbook/internal/app/concerts"
	"gigbook/internal/app/feedback"
	"gigbook/internal/app/sponsorships"
	"gigbook/internal/app/staff"
	"gigbook/internal/app/streaming"
	"gigbook/internal/app/tickets"
	"gigbook/internal/app/venues"
	"gigbook/internal/auth"
	"gigbook/internal/config"
	"gigbook/internal/events"
	"gigbook/internal/httpapi"
	"gigbook/internal/store"
	"gigbook/internal/store/procedures"
)

type application struct {
	services  httpapi.Services
	handler   http.Handler
	publisher events.Publisher
}

// directoryStore is the part of the data layer that STORE_BACKEND can swap
// for the stored-function implementation.
type directoryStore interface {
	staff.Store
	venues.Store
	streaming.Store
	concerts.ReportStore
}

func newApplication(cfg *config.Config, db *sql.DB, logger zerolog.Logger) (*application, error) {
	dataStore := store.New(db)

	var directory directoryStore = dataStore
	if cfg.Database.Backend == config.BackendProcedures {
		directory = procedures.New(db)
	}

	publisher, err := newPublisher(cfg.Messaging, logger)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenManager(cfg.Security.JWTSecret, cfg.Security.TokenTTL)

	svc := httpapi.Services{
		Attendees:    attendees.New(dataStore, tokens),
		Admins:       admins.New(dataStore, tokens),
		Venues:       venues.New(directory),
		Artists:      artists.New(dataStore),
		Staff:        staff.New(directory),
		Concerts:     concerts.New(dataStore, directory, publisher),
		Tickets:      tickets.New(dataStore, publisher),
		Feedback:     feedback.New(dataStore, publisher),
		Sponsorships: sponsorships.New(dataStore),
		Streaming:    streaming.New(directory),
	}

	server := httpapi.New(svc, httpapi.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Tokens:         tokens,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     cfg.RateLimit.Window,
		LoginRateLimit: cfg.RateLimit.LoginRequests,
		Ping:           pingDatabase(db),
	})

	return &application{services: svc, handler: server.Routes(), publisher: publisher}, nil
}

func newPublisher(cfg config.MessagingConfig, logger zerolog.Logger) (events.Publisher, error) {
	if cfg.RabbitURL == "" {
		logger.Info().Msg("RABBITMQ_URL not set, domain events disabled")
		return events.Noop{}, nil
	}

	publisher, err := events.NewRabbitPublisher(cfg.RabbitURL, cfg.Exchange, logger)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	logger.Info().Str("exchange", cfg.Exchange).Msg("publishing domain events")
	return publisher, nil
}

func (a *application) Close() error {
	return a.publisher.Close()
}
