package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/models"
	"gigbook/internal/validation"
)

type memStore struct{ saved []*models.Feedback }

func (m *memStore) ListFeedbackByConcert(_ context.Context, concertID int64) ([]*models.Feedback, error) {
	out := []*models.Feedback{}
	for _, f := range m.saved {
		if f.ConcertID == concertID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memStore) CreateFeedback(_ context.Context, f *models.Feedback) (*models.Feedback, error) {
	f.ID = int64(len(m.saved) + 1)
	m.saved = append(m.saved, f)
	return f, nil
}

func (m *memStore) DeleteFeedback(context.Context, int64) error { return nil }

func TestSubmitRatingBounds(t *testing.T) {
	tests := []struct {
		rating int
		valid  bool
	}{
		{rating: 0},
		{rating: 1, valid: true},
		{rating: 5, valid: true},
		{rating: 6},
	}

	for _, tc := range tests {
		st := &memStore{}
		svc := New(st, nil)

		_, err := svc.Submit(context.Background(), &models.Feedback{ConcertID: 1, AttendeeID: 1, Rating: tc.rating})
		if tc.valid {
			require.NoError(t, err, "rating %d", tc.rating)
			assert.Len(t, st.saved, 1)
			continue
		}
		var verr *validation.RequestValidationError
		assert.True(t, errors.As(err, &verr), "rating %d", tc.rating)
		assert.Empty(t, st.saved)
	}
}

func TestListByConcertIsNeverNil(t *testing.T) {
	svc := New(&memStore{}, nil)
	got, err := svc.ListByConcert(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
