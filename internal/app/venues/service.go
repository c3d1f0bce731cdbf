package venues

import (
	"context"
	"strings"

	"gigbook/internal/models"
	"gigbook/internal/validation"
)

// Store defines persistence operations for venues
type Store interface {
	ListVenues(ctx context.Context) ([]*models.Venue, error)
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
}

// Service coordinates venue operations
type Service interface {
	List(ctx context.Context) ([]*models.Venue, error)
	Get(ctx context.Context, id int64) (*models.Venue, error)
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a venues Service
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListVenues(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	venue.Name = strings.TrimSpace(venue.Name)
	venue.Location = strings.TrimSpace(venue.Location)
	if err := validation.Struct(venue); err != nil {
		return nil, err
	}

	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}
