package feedback

import (
	"context"
	"strings"

	"gigbook/internal/events"
	"gigbook/internal/models"
	"gigbook/internal/validation"
)

// Store defines persistence operations for feedback
type Store interface {
	ListFeedbackByConcert(ctx context.Context, concertID int64) ([]*models.Feedback, error)
	CreateFeedback(ctx context.Context, f *models.Feedback) (*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

// Service coordinates concert feedback
type Service interface {
	ListByConcert(ctx context.Context, concertID int64) ([]*models.Feedback, error)
	Submit(ctx context.Context, f *models.Feedback) (*models.Feedback, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store     Store
	publisher events.Publisher
}

// New constructs a feedback Service. A nil publisher disables events.
func New(store Store, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &service{store: store, publisher: publisher}
}

func (s *service) ListByConcert(ctx context.Context, concertID int64) ([]*models.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListFeedbackByConcert(ctx, concertID)
}

// Submit records a 1-5 rating. The concert does not have to be Completed.
func (s *service) Submit(ctx context.Context, f *models.Feedback) (*models.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.Comments = strings.TrimSpace(f.Comments)
	if err := validation.Struct(f); err != nil {
		return nil, err
	}

	created, err := s.store.CreateFeedback(ctx, f)
	if err != nil {
		return nil, err
	}

	events.Emit(ctx, s.publisher, events.FeedbackSubmitted, created)
	return created, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteFeedback(ctx, id)
}
