// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigbook_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gigbook_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gigbook_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Ticketing
	TicketsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gigbook_tickets_issued_total",
			Help: "Tickets successfully issued",
		},
	)

	TicketsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigbook_tickets_rejected_total",
			Help: "Ticket purchases rejected by business rules",
		},
		[]string{"reason"}, // "sold_out", "canceled"
	)

	// Messaging
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigbook_events_published_total",
			Help: "Domain events handed to the broker",
		},
		[]string{"routing_key", "result"}, // result: "ok", "error", "breaker_open"
	)

	// Database pool
	DBOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gigbook_db_open_connections",
			Help: "Open connections in the database pool at last health check",
		},
	)
)
