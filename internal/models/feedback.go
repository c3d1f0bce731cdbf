package models

import "time"

// Feedback is an attendee's rating of a concert
type Feedback struct {
	ID         int64     `json:"id"`
	ConcertID  int64     `json:"concertId" validate:"required,gt=0"`
	AttendeeID int64     `json:"attendeeId" validate:"required,gt=0"`
	Rating     int       `json:"rating" validate:"min=1,max=5"`
	Comments   string    `json:"comments,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`

	// Populated via JOIN
	AttendeeName string `json:"attendeeName,omitempty"`
}
