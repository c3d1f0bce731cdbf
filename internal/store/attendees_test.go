package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"gigbook/internal/models"
)

func TestCreateAttendee(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM attendees WHERE LOWER(contact_info) = LOWER($1)")).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"one"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendees")).
		WithArgs("Ana", "ana@example.com", "", []byte("hash")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "loyalty_points"}).AddRow(int64(1), 0))
	mock.ExpectCommit()

	got, err := s.CreateAttendee(context.Background(), &models.Attendee{
		Name: "Ana", ContactInfo: " ana@example.com ", PasswordHash: []byte("hash"),
	})
	if err != nil {
		t.Fatalf("CreateAttendee error: %v", err)
	}
	if got.ID != 1 || got.ContactInfo != "ana@example.com" {
		t.Fatalf("unexpected attendee %#v", got)
	}
}

func TestCreateAttendeeDuplicateContact(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM attendees WHERE LOWER(contact_info) = LOWER($1)")).
		WithArgs("ANA@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
	mock.ExpectRollback()

	_, err := s.CreateAttendee(context.Background(), &models.Attendee{
		Name: "Ana", ContactInfo: "ANA@example.com", PasswordHash: []byte("hash"),
	})
	if !errors.Is(err, ErrContactExists) {
		t.Fatalf("expected ErrContactExists, got %v", err)
	}
}

func TestCreateAttendeeRaceHitsUniqueIndex(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM attendees")).
		WillReturnRows(sqlmock.NewRows([]string{"one"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendees")).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := s.CreateAttendee(context.Background(), &models.Attendee{
		Name: "Ana", ContactInfo: "ana@example.com", PasswordHash: []byte("hash"),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAttendeeByContactNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM attendees WHERE LOWER(contact_info) = LOWER($1)")).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "contact_info", "phone", "loyalty_points", "password_hash"}))

	_, err := s.AttendeeByContact(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrAttendeeNotFound) {
		t.Fatalf("expected ErrAttendeeNotFound, got %v", err)
	}
}

func TestEnsureAdminExisting(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (username) DO NOTHING")).
		WithArgs("root", []byte("hash")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	created, err := s.EnsureAdmin(context.Background(), "root", []byte("hash"))
	if err != nil {
		t.Fatalf("EnsureAdmin error: %v", err)
	}
	if created {
		t.Fatal("expected existing admin to be left alone")
	}
}
