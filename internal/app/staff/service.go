package staff

import (
	"context"
	"strings"

	"gigbook/internal/models"
	"gigbook/internal/validation"
)

// Store defines persistence operations for staff
type Store interface {
	ListStaff(ctx context.Context) ([]*models.Staff, error)
	GetStaff(ctx context.Context, id int64) (*models.Staff, error)
	CreateStaff(ctx context.Context, member *models.Staff) (*models.Staff, error)
	DeleteStaff(ctx context.Context, id int64) error
}

// Service coordinates staff operations
type Service interface {
	List(ctx context.Context) ([]*models.Staff, error)
	Get(ctx context.Context, id int64) (*models.Staff, error)
	Create(ctx context.Context, member *models.Staff) (*models.Staff, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a staff Service
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]*models.Staff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListStaff(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*models.Staff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetStaff(ctx, id)
}

func (s *service) Create(ctx context.Context, member *models.Staff) (*models.Staff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	member.Name = strings.TrimSpace(member.Name)
	member.Role = strings.TrimSpace(member.Role)
	if err := validation.Struct(member); err != nil {
		return nil, err
	}

	return s.store.CreateStaff(ctx, member)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteStaff(ctx, id)
}
