package sponsorships

import (
	"context"
	"strings"

	"gigbook/internal/models"
	"gigbook/internal/validation"
)

// Store defines persistence operations for sponsorships
type Store interface {
	ListSponsorships(ctx context.Context, concertID *int64) ([]*models.Sponsorship, error)
	CreateSponsorship(ctx context.Context, sp *models.Sponsorship) (*models.Sponsorship, error)
	DeleteSponsorship(ctx context.Context, id int64) error
}

// Service coordinates sponsorship operations
type Service interface {
	List(ctx context.Context) ([]*models.Sponsorship, error)
	ListByConcert(ctx context.Context, concertID int64) ([]*models.Sponsorship, error)
	Create(ctx context.Context, sp *models.Sponsorship) (*models.Sponsorship, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a sponsorships Service
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]*models.Sponsorship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListSponsorships(ctx, nil)
}

func (s *service) ListByConcert(ctx context.Context, concertID int64) ([]*models.Sponsorship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListSponsorships(ctx, &concertID)
}

func (s *service) Create(ctx context.Context, sp *models.Sponsorship) (*models.Sponsorship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sp.Name = strings.TrimSpace(sp.Name)
	sp.ContactInfo = strings.TrimSpace(sp.ContactInfo)
	if err := validation.Struct(sp); err != nil {
		return nil, err
	}

	return s.store.CreateSponsorship(ctx, sp)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteSponsorship(ctx, id)
}
