package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

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
	"gigbook/internal/http/middleware"
)

// Services groups the application services the handlers call.
type Services struct {
	Attendees    attendees.Service
	Admins       admins.Service
	Venues       venues.Service
	Artists      artists.Service
	Staff        staff.Service
	Concerts     concerts.Service
	Tickets      tickets.Service
	Feedback     feedback.Service
	Sponsorships sponsorships.Service
	Streaming    streaming.Service
}

// Options tunes the router. Zero values disable the matching middleware.
type Options struct {
	AllowedOrigins []string
	Tokens         middleware.TokenParser

	RateLimit      int
	RateWindow     time.Duration
	LoginRateLimit int

	// Ping backs /health.
	Ping func(ctx context.Context) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	svc  Services
	opts Options
}

// New configures a Server.
func New(svc Services, opts Options) *Server {
	if opts.RateWindow <= 0 {
		opts.RateWindow = time.Minute
	}
	return &Server{svc: svc, opts: opts}
}

// Routes exposes every HTTP endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogging())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(s.opts.AllowedOrigins))
	r.Use(middleware.Metrics())
	r.Use(middleware.Identify(s.opts.Tokens))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		if s.opts.RateLimit > 0 {
			r.Use(httprate.LimitByIP(s.opts.RateLimit, s.opts.RateWindow))
		}

		r.Group(func(r chi.Router) {
			if s.opts.LoginRateLimit > 0 {
				r.Use(httprate.LimitByIP(s.opts.LoginRateLimit, s.opts.RateWindow))
			}
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/admin/login", s.handleAdminLogin)
		})

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", s.handleListStaff)
			r.Post("/", s.handleCreateStaff)
			r.Get("/{id}", s.handleGetStaff)
			r.Delete("/{id}", s.handleDeleteStaff)
		})

		r.Route("/venues", func(r chi.Router) {
			r.Get("/", s.handleListVenues)
			r.Post("/", s.handleCreateVenue)
			r.Get("/{id}", s.handleGetVenue)
			r.Delete("/{id}", s.handleDeleteVenue)
		})

		r.Route("/artists", func(r chi.Router) {
			r.Get("/", s.handleListArtists)
			r.Post("/", s.handleCreateArtist)
			r.Get("/{id}", s.handleGetArtist)
			r.Delete("/{id}", s.handleDeleteArtist)
		})

		r.Route("/concerts", func(r chi.Router) {
			r.Get("/", s.handleListConcerts)
			r.Post("/", s.handleCreateConcert)
			r.Get("/attendee/{id}/dashboard", s.handleAttendeeDashboard)
			r.Get("/{id}", s.handleGetConcert)
			r.Put("/{id}", s.handleUpdateConcert)
			r.Delete("/{id}", s.handleDeleteConcert)
			r.Get("/{id}/revenue", s.handleConcertRevenue)
			r.Get("/{id}/summary", s.handleConcertSummary)
			r.Put("/{id}/price", s.handleIncreasePrice)
		})

		r.Route("/sponsorships", func(r chi.Router) {
			r.Get("/", s.handleListSponsorships)
			r.Post("/", s.handleCreateSponsorship)
			r.Get("/concert/{id}", s.handleListConcertSponsorships)
			r.Delete("/{id}", s.handleDeleteSponsorship)
		})

		r.Route("/streaming", func(r chi.Router) {
			r.Get("/", s.handleListPlatforms)
			r.Post("/", s.handleCreatePlatform)
			r.Get("/{id}", s.handleGetPlatform)
			r.Put("/{id}", s.handleUpdatePlatform)
			r.Delete("/{id}", s.handleDeletePlatform)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Post("/", s.handlePurchaseTicket)
			r.Get("/attendee/{id}", s.handleListAttendeeTickets)
			r.Get("/concert/{concertID}/attendee/{attendeeID}", s.handleGetConcertTicket)
			r.Delete("/{id}", s.handleCancelTicket)
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Post("/", s.handleSubmitFeedback)
			r.Get("/concert/{id}", s.handleListConcertFeedback)
			r.Delete("/{id}", s.handleDeleteFeedback)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.opts.Ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.opts.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
