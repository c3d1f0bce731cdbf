package streaming

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

type memStore struct {
	platforms map[int64]*models.StreamingPlatform
}

func (m *memStore) ListPlatforms(context.Context) ([]*models.StreamingPlatform, error) {
	out := []*models.StreamingPlatform{}
	for _, p := range m.platforms {
		out = append(out, p)
	}
	return out, nil
}

func (m *memStore) GetPlatform(_ context.Context, id int64) (*models.StreamingPlatform, error) {
	if p, ok := m.platforms[id]; ok {
		return p, nil
	}
	return nil, store.ErrPlatformNotFound
}

func (m *memStore) CreatePlatform(_ context.Context, p *models.StreamingPlatform) (*models.StreamingPlatform, error) {
	p.ID = int64(len(m.platforms) + 1)
	m.platforms[p.ID] = p
	return p, nil
}

func (m *memStore) UpdatePlatform(_ context.Context, id int64, p *models.StreamingPlatform) (*models.StreamingPlatform, error) {
	if _, ok := m.platforms[id]; !ok {
		return nil, store.ErrPlatformNotFound
	}
	p.ID = id
	m.platforms[id] = p
	return p, nil
}

func (m *memStore) DeletePlatform(_ context.Context, id int64) error {
	if _, ok := m.platforms[id]; !ok {
		return store.ErrPlatformNotFound
	}
	delete(m.platforms, id)
	return nil
}

func TestCreateValidatesURLAndDate(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		date  string
		field string
	}{
		{"bad url", "not a url", "2030-01-01", "url"},
		{"bad date", "https://live.example", "01-01-2030", "streamingDate"},
		{"missing date", "https://live.example", "", "streamingDate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := New(&memStore{platforms: map[int64]*models.StreamingPlatform{}})
			_, err := svc.Create(context.Background(), &models.StreamingPlatform{Name: "Live", URL: tc.url, StreamingDate: tc.date})

			var verr *validation.RequestValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.field, verr.Fields[0].Field)
		})
	}
}

func TestUpdateTrimsAndPersists(t *testing.T) {
	m := &memStore{platforms: map[int64]*models.StreamingPlatform{
		1: {ID: 1, Name: "Old", URL: "https://old.example", StreamingDate: "2030-01-01"},
	}}
	svc := New(m)

	updated, err := svc.Update(context.Background(), 1, &models.StreamingPlatform{
		Name: "  New  ", URL: " https://new.example ", StreamingDate: "2030-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "https://new.example", m.platforms[1].URL)
}

func TestUpdateUnknownPlatform(t *testing.T) {
	svc := New(&memStore{platforms: map[int64]*models.StreamingPlatform{}})

	_, err := svc.Update(context.Background(), 9, &models.StreamingPlatform{
		Name: "X", URL: "https://x.example", StreamingDate: "2030-01-01",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
