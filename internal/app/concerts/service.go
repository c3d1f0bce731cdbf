package concerts

import (
	"context"
	"strings"

	"gigbook/internal/events"
	"gigbook/internal/models"
	"gigbook/internal/validation"
)

// Store defines persistence operations for concerts
type Store interface {
	ListConcerts(ctx context.Context, filter models.ConcertFilter) ([]*models.ConcertWithDetails, error)
	GetConcert(ctx context.Context, id int64) (*models.ConcertWithDetails, error)
	CreateConcert(ctx context.Context, concert *models.Concert) (*models.ConcertWithDetails, error)
	UpdateConcert(ctx context.Context, id int64, concert *models.Concert) (*models.ConcertWithDetails, error)
	DeleteConcert(ctx context.Context, id int64) error
	AttendeeDashboard(ctx context.Context, attendeeID int64) (*models.AttendeeDashboard, error)
}

// ReportStore computes concert sales figures. It is satisfied by both the
// SQL store and the stored-function store.
type ReportStore interface {
	ConcertRevenue(ctx context.Context, id int64) (*models.ConcertRevenue, error)
	ConcertSummary(ctx context.Context, id int64) (*models.ConcertSummary, error)
	IncreaseConcertPrice(ctx context.Context, id int64, increase float64) (float64, error)
}

// Service coordinates concert-related operations
type Service interface {
	List(ctx context.Context, filter models.ConcertFilter) ([]*models.ConcertWithDetails, error)
	Get(ctx context.Context, id int64) (*models.ConcertWithDetails, error)
	Create(ctx context.Context, concert *models.Concert) (*models.ConcertWithDetails, error)
	Update(ctx context.Context, id int64, concert *models.Concert) (*models.ConcertWithDetails, error)
	Delete(ctx context.Context, id int64) error
	Revenue(ctx context.Context, id int64) (*models.ConcertRevenue, error)
	Summary(ctx context.Context, id int64) (*models.ConcertSummary, error)
	IncreasePrice(ctx context.Context, id int64, increase float64) (float64, error)
	Dashboard(ctx context.Context, attendeeID int64) (*models.AttendeeDashboard, error)
}

type service struct {
	store     Store
	reports   ReportStore
	publisher events.Publisher
}

// New constructs a concerts Service. A nil publisher disables events.
func New(store Store, reports ReportStore, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &service{
		store:     store,
		reports:   reports,
		publisher: publisher,
	}
}

func (s *service) List(ctx context.Context, filter models.ConcertFilter) ([]*models.ConcertWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch filter.Status {
	case "", models.ConcertScheduled, models.ConcertCompleted, models.ConcertCanceled:
	default:
		return nil, validation.New("status", "status must be one of: Scheduled Completed Canceled")
	}

	return s.store.ListConcerts(ctx, filter)
}

func (s *service) Get(ctx context.Context, id int64) (*models.ConcertWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetConcert(ctx, id)
}

func (s *service) Create(ctx context.Context, concert *models.Concert) (*models.ConcertWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if concert.Status == "" {
		concert.Status = models.ConcertScheduled
	}
	if err := clean(concert); err != nil {
		return nil, err
	}

	created, err := s.store.CreateConcert(ctx, concert)
	if err != nil {
		return nil, err
	}

	events.Emit(ctx, s.publisher, events.ConcertCreated, created)
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, concert *models.Concert) (*models.ConcertWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := clean(concert); err != nil {
		return nil, err
	}
	return s.store.UpdateConcert(ctx, id, concert)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.store.DeleteConcert(ctx, id); err != nil {
		return err
	}

	events.Emit(ctx, s.publisher, events.ConcertDeleted, map[string]int64{"concertId": id})
	return nil
}

func (s *service) Revenue(ctx context.Context, id int64) (*models.ConcertRevenue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.reports.ConcertRevenue(ctx, id)
}

func (s *service) Summary(ctx context.Context, id int64) (*models.ConcertSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.reports.ConcertSummary(ctx, id)
}

// IncreasePrice adds a positive amount to the current price.
func (s *service) IncreasePrice(ctx context.Context, id int64, increase float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if increase <= 0 {
		return 0, validation.New("priceIncrease", "priceIncrease must be greater than 0")
	}
	return s.reports.IncreaseConcertPrice(ctx, id, increase)
}

func (s *service) Dashboard(ctx context.Context, attendeeID int64) (*models.AttendeeDashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.AttendeeDashboard(ctx, attendeeID)
}

func clean(c *models.Concert) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Date = strings.TrimSpace(c.Date)
	c.Time = strings.TrimSpace(c.Time)
	return validation.Struct(c)
}
