package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string  `json:"name" validate:"required"`
	Capacity int     `json:"capacity" validate:"gt=0"`
	Rating   int     `json:"rating" validate:"min=1,max=5"`
	Price    float64 `json:"price" validate:"gt=0"`
	Date     string  `json:"date" validate:"omitempty,isodate"`
	Time     string  `json:"time" validate:"omitempty,clock"`
	Status   string  `json:"status" validate:"omitempty,oneof=Scheduled Completed Canceled"`
}

func valid() sample {
	return sample{Name: "x", Capacity: 1, Rating: 3, Price: 1, Date: "2026-05-01", Time: "19:30"}
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(valid()))
}

func TestStructFieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*sample)
		field   string
		message string
	}{
		{"missing name", func(s *sample) { s.Name = "" }, "name", "name is required"},
		{"zero capacity", func(s *sample) { s.Capacity = 0 }, "capacity", "capacity must be greater than 0"},
		{"rating too high", func(s *sample) { s.Rating = 6 }, "rating", "rating must be at most 5"},
		{"rating too low", func(s *sample) { s.Rating = 0 }, "rating", "rating must be at least 1"},
		{"bad date", func(s *sample) { s.Date = "01/05/2026" }, "date", "date must be a date formatted YYYY-MM-DD"},
		{"bad time", func(s *sample) { s.Time = "7pm" }, "time", "time must be a time formatted HH:MM"},
		{"bad status", func(s *sample) { s.Status = "Live" }, "status", "status must be one of: Scheduled Completed Canceled"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)

			err := Struct(s)
			var verr *RequestValidationError
			require.True(t, errors.As(err, &verr), "want *RequestValidationError, got %v", err)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tc.field, verr.Fields[0].Field)
			assert.Equal(t, tc.message, verr.Fields[0].Message)
		})
	}
}

func TestClockAcceptsSeconds(t *testing.T) {
	s := valid()
	s.Time = "19:30:00"
	assert.NoError(t, Struct(s))
}

func TestNewSingleField(t *testing.T) {
	err := New("priceIncrease", "priceIncrease must be greater than 0")
	assert.Equal(t, "priceIncrease must be greater than 0", err.Error())
}
