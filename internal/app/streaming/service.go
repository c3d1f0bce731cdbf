package streaming

import (
	"context"
	"strings"

	"gigbook/internal/models"
	"gigbook/internal/validation"
)

// Store defines persistence operations for streaming platforms
type Store interface {
	ListPlatforms(ctx context.Context) ([]*models.StreamingPlatform, error)
	GetPlatform(ctx context.Context, id int64) (*models.StreamingPlatform, error)
	CreatePlatform(ctx context.Context, p *models.StreamingPlatform) (*models.StreamingPlatform, error)
	UpdatePlatform(ctx context.Context, id int64, p *models.StreamingPlatform) (*models.StreamingPlatform, error)
	DeletePlatform(ctx context.Context, id int64) error
}

// Service coordinates streaming platform operations
type Service interface {
	List(ctx context.Context) ([]*models.StreamingPlatform, error)
	Get(ctx context.Context, id int64) (*models.StreamingPlatform, error)
	Create(ctx context.Context, p *models.StreamingPlatform) (*models.StreamingPlatform, error)
	Update(ctx context.Context, id int64, p *models.StreamingPlatform) (*models.StreamingPlatform, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a streaming Service
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]*models.StreamingPlatform, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlatforms(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*models.StreamingPlatform, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetPlatform(ctx, id)
}

func (s *service) Create(ctx context.Context, p *models.StreamingPlatform) (*models.StreamingPlatform, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := clean(p); err != nil {
		return nil, err
	}
	return s.store.CreatePlatform(ctx, p)
}

func (s *service) Update(ctx context.Context, id int64, p *models.StreamingPlatform) (*models.StreamingPlatform, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := clean(p); err != nil {
		return nil, err
	}
	return s.store.UpdatePlatform(ctx, id, p)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeletePlatform(ctx, id)
}

func clean(p *models.StreamingPlatform) error {
	p.Name = strings.TrimSpace(p.Name)
	p.URL = strings.TrimSpace(p.URL)
	return validation.Struct(p)
}
