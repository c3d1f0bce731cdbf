package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return New(db), mock
}

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		err   error
		class error
	}{
		{ErrVenueNotFound, ErrNotFound},
		{ErrConcertNotFound, ErrNotFound},
		{ErrReferenceNotFound, ErrNotFound},
		{ErrContactExists, ErrConflict},
		{ErrStillInUse, ErrConflict},
		{ErrSoldOut, ErrInvalidState},
		{ErrConcertCompleted, ErrInvalidState},
		{ErrConcertCanceled, ErrInvalidState},
	}
	for _, tc := range tests {
		wrapped := fmt.Errorf("outer: %w", tc.err)
		if !errors.Is(wrapped, tc.class) {
			t.Errorf("%v does not wrap %v", tc.err, tc.class)
		}
	}
	if ErrVenueNotFound.Error() != "venue not found" {
		t.Errorf("unexpected message %q", ErrVenueNotFound.Error())
	}
}

func TestMapInsertError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "attendees_contact_info_key"}
	if err := MapInsertError(unique); !errors.Is(err, ErrConflict) {
		t.Fatalf("unique violation: got %v", err)
	}

	fk := &pgconn.PgError{Code: "23503"}
	if err := MapInsertError(fk); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign key violation on insert: got %v", err)
	}
	if err := MapDeleteError(fk); !errors.Is(err, ErrConflict) {
		t.Fatalf("foreign key violation on delete: got %v", err)
	}

	other := errors.New("boom")
	if err := MapInsertError(other); err != other {
		t.Fatalf("unrelated error should pass through, got %v", err)
	}
}
