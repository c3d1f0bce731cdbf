package models

import "time"

// TicketStatusActive marks a sold, valid ticket.
const TicketStatusActive = "ACTIVE"

// Ticket is one admission to a concert
type Ticket struct {
	ID           int64     `json:"id"`
	Price        float64   `json:"price"`
	PurchaseDate time.Time `json:"purchaseDate"`
	Status       string    `json:"status"`
	ConcertID    int64     `json:"concertId"`
	AttendeeID   int64     `json:"attendeeId"`
}

// TicketWithDetails includes concert information for attendee views
type TicketWithDetails struct {
	Ticket
	ConcertName string `json:"concertName"`
	ConcertDate string `json:"concertDate"`
	ConcertTime string `json:"concertTime"`
	VenueName   string `json:"venueName"`
	ArtistName  string `json:"artistName"`
	ArtistGenre string `json:"artistGenre,omitempty"`
}

// TicketRequest is the purchase input. Tickets are always sold at the
// concert's current price.
type TicketRequest struct {
	ConcertID  int64 `json:"concertId" validate:"required,gt=0"`
	AttendeeID int64 `json:"attendeeId" validate:"required,gt=0"`
}
