package artists

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
	artists  []*models.Artist
	managers map[int64]string
}

func (m *memStore) ListArtists(context.Context) ([]*models.Artist, error) { return m.artists, nil }

func (m *memStore) GetArtist(_ context.Context, id int64) (*models.Artist, error) {
	for _, a := range m.artists {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, store.ErrArtistNotFound
}

func (m *memStore) CreateArtist(_ context.Context, a *models.Artist) (*models.Artist, error) {
	if a.ManagerID != nil {
		name, ok := m.managers[*a.ManagerID]
		if !ok {
			return nil, store.ErrManagerNotFound
		}
		a.ManagerName = name
	}
	a.ID = int64(len(m.artists) + 1)
	m.artists = append(m.artists, a)
	return a, nil
}

func (m *memStore) DeleteArtist(context.Context, int64) error { return nil }

func TestCreateTrimsAndJoinsManager(t *testing.T) {
	st := &memStore{managers: map[int64]string{3: "Mo"}}
	svc := New(st)

	manager := int64(3)
	a, err := svc.Create(context.Background(), &models.Artist{
		Name: "  Kavinsky ", Genre: " Synthwave", ContactInfo: "k@example.com ", ManagerID: &manager,
	})
	require.NoError(t, err)
	assert.Equal(t, "Kavinsky", a.Name)
	assert.Equal(t, "Synthwave", a.Genre)
	assert.Equal(t, "k@example.com", a.ContactInfo)
	assert.Equal(t, "Mo", a.ManagerName)
}

func TestCreateRequiresFields(t *testing.T) {
	svc := New(&memStore{})

	_, err := svc.Create(context.Background(), &models.Artist{Name: "   "})
	var verr *validation.RequestValidationError
	require.True(t, errors.As(err, &verr))

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, map[string]string{
		"name":        "name is required",
		"genre":       "genre is required",
		"contactInfo": "contactInfo is required",
	}, fields)
}

func TestCreateUnknownManager(t *testing.T) {
	st := &memStore{managers: map[int64]string{}}
	svc := New(st)

	manager := int64(12)
	_, err := svc.Create(context.Background(), &models.Artist{
		Name: "Air", Genre: "Electronic", ContactInfo: "air@example.com", ManagerID: &manager,
	})
	assert.ErrorIs(t, err, store.ErrManagerNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, st.artists)
}

func TestGetUnknownArtist(t *testing.T) {
	svc := New(&memStore{})
	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCanceledContext(t *testing.T) {
	svc := New(&memStore{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Create(ctx, &models.Artist{Name: "Air", Genre: "Electronic", ContactInfo: "air@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}
