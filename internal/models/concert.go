package models

// ConcertStatus is the lifecycle state of a concert.
type ConcertStatus string

const (
	ConcertScheduled ConcertStatus = "Scheduled"
	ConcertCompleted ConcertStatus = "Completed"
	ConcertCanceled  ConcertStatus = "Canceled"
)

// Concert represents a scheduled performance
type Concert struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name" validate:"required"`
	Date             string        `json:"date" validate:"required,isodate"` // YYYY-MM-DD
	Time             string        `json:"time" validate:"required,clock"`   // HH:MM
	VenueID          int64         `json:"venueId" validate:"required,gt=0"`
	ArtistID         int64         `json:"artistId" validate:"required,gt=0"`
	ManagerID        int64         `json:"managerId" validate:"required,gt=0"`
	TicketSalesLimit int           `json:"ticketSalesLimit" validate:"required,gt=0"`
	Price            float64       `json:"price" validate:"required,gt=0"`
	Status           ConcertStatus `json:"status" validate:"omitempty,oneof=Scheduled Completed Canceled"`
	Description      string        `json:"description,omitempty"`
	StreamingID      *int64        `json:"streamingId,omitempty" validate:"omitempty,gt=0"`
}

// ConcertWithDetails includes the joined venue, artist, manager and platform names
type ConcertWithDetails struct {
	Concert
	VenueName     string `json:"venueName"`
	VenueLocation string `json:"venueLocation"`
	ArtistName    string `json:"artistName"`
	ArtistGenre   string `json:"artistGenre"`
	ManagerName   string `json:"managerName"`
	StreamingName string `json:"streamingName,omitempty"`
	StreamingURL  string `json:"streamingUrl,omitempty"`
}

// ConcertFilter narrows concert listings
type ConcertFilter struct {
	Status   ConcertStatus
	Upcoming bool // concert date today or later
}

// ConcertRevenue is the total of active ticket prices for one concert
type ConcertRevenue struct {
	ConcertID int64   `json:"concertId"`
	Revenue   float64 `json:"revenue"`
}

// ConcertSummary reports sales figures for one concert
type ConcertSummary struct {
	ConcertID    int64   `json:"concertId"`
	Name         string  `json:"name"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	CurrentPrice float64 `json:"currentPrice"`
	TicketLimit  int     `json:"ticketLimit"`
	TicketsSold  int     `json:"ticketsSold"`
	SponsorCount int     `json:"sponsorCount"`
	TotalRevenue float64 `json:"totalRevenue"`
	IsSoldOut    bool    `json:"isSoldOut"`
}

// SoldOut reports whether no further tickets may be issued.
func SoldOut(ticketsSold, ticketLimit int) bool {
	return ticketsSold >= ticketLimit
}
