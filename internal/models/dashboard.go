package models

// AttendeeDashboard aggregates an attendee's profile, stats and tickets
type AttendeeDashboard struct {
	Profile         DashboardProfile    `json:"profile"`
	UpcomingTickets []TicketWithDetails `json:"upcomingTickets"`
	PastTickets     []PastTicket        `json:"pastTickets"`
}

// DashboardProfile holds the attendee's aggregated statistics
type DashboardProfile struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ContactInfo   string  `json:"contactInfo"`
	LoyaltyPoints int     `json:"loyaltyPoints"`
	TotalTickets  int     `json:"totalTickets"`
	TotalSpent    float64 `json:"totalSpent"`
	TotalReviews  int     `json:"totalReviews"`
	FavoriteGenre string  `json:"favoriteGenre,omitempty"`
}

// PastTicket is a ticket for a concert that already happened, with the
// attendee's feedback when they left any.
type PastTicket struct {
	TicketWithDetails
	Feedback *Feedback `json:"feedback,omitempty"`
}
