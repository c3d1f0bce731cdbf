package models

// Sponsorship is a sponsor's contribution to a concert
type Sponsorship struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name" validate:"required"`
	ContactInfo     string  `json:"contactInfo" validate:"required"`
	ContributionAmt float64 `json:"contributionAmt" validate:"gt=0"`
	ConcertID       int64   `json:"concertId" validate:"required,gt=0"`

	// Populated via JOIN
	ConcertName string `json:"concertName,omitempty"`
}
