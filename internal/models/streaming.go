package models

// StreamingPlatform is where a concert is broadcast
type StreamingPlatform struct {
	ID            int64  `json:"id"`
	Name          string `json:"name" validate:"required"`
	URL           string `json:"url" validate:"required,url"`
	StreamingDate string `json:"streamingDate" validate:"required,isodate"` // YYYY-MM-DD
}
