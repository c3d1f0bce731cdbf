package models

// Venue represents a concert venue
type Venue struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" validate:"required"`
	Location   string `json:"location" validate:"required"`
	Capacity   int    `json:"capacity" validate:"gt=0"`
	Schedule   string `json:"schedule,omitempty"`   // availability schedule
	Facilities string `json:"facilities,omitempty"` // free text, e.g. "parking, bar"
}
