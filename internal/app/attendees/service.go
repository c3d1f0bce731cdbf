package attendees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gigbook/internal/auth"
	"gigbook/internal/models"
	"gigbook/internal/store"
	"gigbook/internal/validation"
)

// ErrInvalidCredentials indicates a login failure.
var ErrInvalidCredentials = errors.New("invalid contact info or password")

// Store describes the persistence operations required by the attendee service.
type Store interface {
	CreateAttendee(ctx context.Context, attendee *models.Attendee) (*models.Attendee, error)
	AttendeeByContact(ctx context.Context, contact string) (*models.Attendee, error)
}

// TokenIssuer signs login tokens.
type TokenIssuer interface {
	Issue(subjectID int64, role string) (string, error)
}

// RegisterInput is the sign-up request body.
type RegisterInput struct {
	Name        string `json:"name" validate:"required"`
	ContactInfo string `json:"contactInfo" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Phone       string `json:"phone,omitempty"`
}

// LoginInput is the login request body.
type LoginInput struct {
	ContactInfo string `json:"contactInfo" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// LoginResult carries the authenticated attendee and their token.
type LoginResult struct {
	Attendee *models.Attendee
	Token    string
}

// Service exposes attendee sign-up and login.
type Service interface {
	Register(ctx context.Context, in RegisterInput) (*models.Attendee, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type service struct {
	store  Store
	tokens TokenIssuer
}

// New wires a Service backed by the provided Store.
func New(store Store, tokens TokenIssuer) Service {
	return &service{store: store, tokens: tokens}
}

func (s *service) Register(ctx context.Context, in RegisterInput) (*models.Attendee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.ContactInfo = strings.TrimSpace(in.ContactInfo)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return s.store.CreateAttendee(ctx, &models.Attendee{
		Name:         in.Name,
		ContactInfo:  in.ContactInfo,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
	})
}

func (s *service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	attendee, err := s.store.AttendeeByContact(ctx, in.ContactInfo)
	if errors.Is(err, store.ErrAttendeeNotFound) {
		auth.BurnPasswordCheck(in.Password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(attendee.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(attendee.ID, auth.RoleAttendee)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Attendee: attendee, Token: token}, nil
}
