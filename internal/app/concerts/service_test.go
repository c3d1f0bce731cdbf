package concerts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/events"
	"gigbook/internal/models"
	"gigbook/internal/store"
	"gigbook/internal/validation"
)

type stubStore struct {
	concerts map[int64]*models.ConcertWithDetails
	prices   map[int64]float64
	filter   models.ConcertFilter
}

func newStubStore() *stubStore {
	return &stubStore{concerts: map[int64]*models.ConcertWithDetails{}, prices: map[int64]float64{}}
}

func (s *stubStore) ListConcerts(_ context.Context, f models.ConcertFilter) ([]*models.ConcertWithDetails, error) {
	s.filter = f
	return []*models.ConcertWithDetails{}, nil
}

func (s *stubStore) GetConcert(_ context.Context, id int64) (*models.ConcertWithDetails, error) {
	c, ok := s.concerts[id]
	if !ok {
		return nil, store.ErrConcertNotFound
	}
	return c, nil
}

func (s *stubStore) CreateConcert(_ context.Context, c *models.Concert) (*models.ConcertWithDetails, error) {
	c.ID = int64(len(s.concerts) + 1)
	d := &models.ConcertWithDetails{Concert: *c}
	s.concerts[c.ID] = d
	s.prices[c.ID] = c.Price
	return d, nil
}

func (s *stubStore) UpdateConcert(_ context.Context, id int64, c *models.Concert) (*models.ConcertWithDetails, error) {
	old, ok := s.concerts[id]
	if !ok {
		return nil, store.ErrConcertNotFound
	}
	if c.Status == "" {
		c.Status = old.Status
	}
	c.ID = id
	s.concerts[id] = &models.ConcertWithDetails{Concert: *c}
	return s.concerts[id], nil
}

func (s *stubStore) DeleteConcert(_ context.Context, id int64) error {
	c, ok := s.concerts[id]
	if !ok {
		return store.ErrConcertNotFound
	}
	if c.Status == models.ConcertCompleted {
		return store.ErrConcertCompleted
	}
	delete(s.concerts, id)
	return nil
}

func (s *stubStore) AttendeeDashboard(context.Context, int64) (*models.AttendeeDashboard, error) {
	return nil, store.ErrAttendeeNotFound
}

func (s *stubStore) ConcertRevenue(_ context.Context, id int64) (*models.ConcertRevenue, error) {
	if _, ok := s.concerts[id]; !ok {
		return nil, store.ErrConcertNotFound
	}
	return &models.ConcertRevenue{ConcertID: id}, nil
}

func (s *stubStore) ConcertSummary(_ context.Context, id int64) (*models.ConcertSummary, error) {
	return nil, store.ErrConcertNotFound
}

func (s *stubStore) IncreaseConcertPrice(_ context.Context, id int64, increase float64) (float64, error) {
	p, ok := s.prices[id]
	if !ok {
		return 0, store.ErrConcertNotFound
	}
	s.prices[id] = p + increase
	return s.prices[id], nil
}

type recordingPublisher struct{ keys []string }

func (r *recordingPublisher) Publish(_ context.Context, key string, _ any) error {
	r.keys = append(r.keys, key)
	return nil
}
func (r *recordingPublisher) Close() error { return nil }

func validConcert() *models.Concert {
	return &models.Concert{
		Name: "Night Drive", Date: "2030-06-01", Time: "20:00",
		VenueID: 1, ArtistID: 1, ManagerID: 1, TicketSalesLimit: 2, Price: 40,
	}
}

func TestCreateDefaultsStatusAndPublishes(t *testing.T) {
	st := newStubStore()
	pub := &recordingPublisher{}
	svc := New(st, st, pub)

	c, err := svc.Create(context.Background(), validConcert())
	require.NoError(t, err)
	assert.Equal(t, models.ConcertScheduled, c.Status)
	assert.Equal(t, []string{events.ConcertCreated}, pub.keys)
}

func TestCreateRejectsInvalidConcert(t *testing.T) {
	svc := New(newStubStore(), nil, nil)

	c := validConcert()
	c.TicketSalesLimit = 0
	c.Time = "late"

	_, err := svc.Create(context.Background(), c)
	var verr *validation.RequestValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestDeleteCompletedConcert(t *testing.T) {
	st := newStubStore()
	pub := &recordingPublisher{}
	svc := New(st, st, pub)
	ctx := context.Background()

	done := validConcert()
	done.Status = models.ConcertCompleted
	created, err := svc.Create(ctx, done)
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrInvalidState)

	open, err := svc.Create(ctx, validConcert())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, open.ID))

	_, err = svc.Get(ctx, open.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, []string{events.ConcertCreated, events.ConcertCreated, events.ConcertDeleted}, pub.keys)
}

func TestUpdateWithoutStatusKeepsCompleted(t *testing.T) {
	st := newStubStore()
	svc := New(st, st, nil)
	ctx := context.Background()

	done := validConcert()
	done.Status = models.ConcertCompleted
	created, err := svc.Create(ctx, done)
	require.NoError(t, err)

	edit := validConcert()
	edit.Name = "Night Drive (Encore)"
	updated, err := svc.Update(ctx, created.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, models.ConcertCompleted, updated.Status)
	assert.Equal(t, "Night Drive (Encore)", updated.Name)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrConcertCompleted)
}

func TestIncreasePrice(t *testing.T) {
	st := newStubStore()
	svc := New(st, st, nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, validConcert())
	require.NoError(t, err)

	for _, bad := range []float64{0, -5} {
		_, err := svc.IncreasePrice(ctx, c.ID, bad)
		var verr *validation.RequestValidationError
		assert.True(t, errors.As(err, &verr), "increase %v", bad)
	}

	price, err := svc.IncreasePrice(ctx, c.ID, 7.5)
	require.NoError(t, err)
	assert.Equal(t, 47.5, price)

	_, err = svc.IncreasePrice(ctx, 999, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	st := newStubStore()
	svc := New(st, st, nil)

	_, err := svc.List(context.Background(), models.ConcertFilter{Status: "Live"})
	var verr *validation.RequestValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = svc.List(context.Background(), models.ConcertFilter{Status: models.ConcertCanceled, Upcoming: true})
	require.NoError(t, err)
	assert.True(t, st.filter.Upcoming)
}
