package venues

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/models"
	"gigbook/internal/store"
	"gigbook/internal/validation"
)

type memStore struct{ venues []*models.Venue }

func (m *memStore) ListVenues(context.Context) ([]*models.Venue, error) { return m.venues, nil }

func (m *memStore) GetVenue(_ context.Context, id int64) (*models.Venue, error) {
	for _, v := range m.venues {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, store.ErrVenueNotFound
}

func (m *memStore) CreateVenue(_ context.Context, v *models.Venue) (*models.Venue, error) {
	v.ID = int64(len(m.venues) + 1)
	m.venues = append(m.venues, v)
	return v, nil
}

func (m *memStore) DeleteVenue(context.Context, int64) error { return nil }

func TestCreateCapacityBounds(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  bool
	}{
		{name: "negative", capacity: -1, wantErr: true},
		{name: "zero", capacity: 0, wantErr: true},
		{name: "one", capacity: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := New(&memStore{})
			v, err := svc.Create(context.Background(), &models.Venue{Name: "Hall", Location: "Oslo", Capacity: tc.capacity})
			if tc.wantErr {
				var verr *validation.RequestValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "capacity must be greater than 0", verr.Fields[0].Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), v.ID)
		})
	}
}

func TestGetUnknownVenue(t *testing.T) {
	svc := New(&memStore{})
	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCanceledContext(t *testing.T) {
	svc := New(&memStore{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
