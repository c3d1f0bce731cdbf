package artists

import (
	"context"
	"strings"

	"gigbook/internal/models"
	"gigbook/internal/validation"
)

// Store defines persistence operations for artists
type Store interface {
	ListArtists(ctx context.Context) ([]*models.Artist, error)
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
}

// Service coordinates artist operations
type Service interface {
	List(ctx context.Context) ([]*models.Artist, error)
	Get(ctx context.Context, id int64) (*models.Artist, error)
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs an artists Service
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Create(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artist.Name = strings.TrimSpace(artist.Name)
	artist.Genre = strings.TrimSpace(artist.Genre)
	artist.ContactInfo = strings.TrimSpace(artist.ContactInfo)
	if err := validation.Struct(artist); err != nil {
		return nil, err
	}

	// The manager is checked by the store inside the insert transaction.
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteArtist(ctx, id)
}
