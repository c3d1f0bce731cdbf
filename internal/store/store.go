package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error classes. Entity errors wrap one of these so callers can map them
// without knowing every entity.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)

// Error is a client-facing failure belonging to one of the error classes.
type Error struct {
	Class   error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Class }

func newError(class error, message string) *Error {
	return &Error{Class: class, Message: message}
}

var (
	ErrAttendeeNotFound  = newError(ErrNotFound, "attendee not found")
	ErrAdminNotFound     = newError(ErrNotFound, "admin user not found")
	ErrVenueNotFound     = newError(ErrNotFound, "venue not found")
	ErrArtistNotFound    = newError(ErrNotFound, "artist not found")
	ErrStaffNotFound     = newError(ErrNotFound, "staff member not found")
	ErrManagerNotFound   = newError(ErrNotFound, "manager not found")
	ErrConcertNotFound   = newError(ErrNotFound, "concert not found")
	ErrTicketNotFound    = newError(ErrNotFound, "ticket not found")
	ErrFeedbackNotFound  = newError(ErrNotFound, "feedback not found")
	ErrSponsorNotFound   = newError(ErrNotFound, "sponsorship not found")
	ErrPlatformNotFound  = newError(ErrNotFound, "streaming platform not found")
	ErrReferenceNotFound = newError(ErrNotFound, "referenced record not found")

	ErrDuplicate     = newError(ErrConflict, "record already exists")
	ErrContactExists = newError(ErrConflict, "contact info already registered")
	ErrStillInUse    = newError(ErrConflict, "record is still referenced by other records")

	ErrSoldOut          = newError(ErrInvalidState, "concert is sold out")
	ErrConcertCompleted = newError(ErrInvalidState, "completed concerts cannot be deleted")
	ErrConcertCanceled  = newError(ErrInvalidState, "concert is canceled")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying pool for callers that share it.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// inTx runs fn inside a transaction, committing when fn returns nil.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// deleteByID removes one row and reports notFound when nothing matched. A
// foreign key violation means the row is still referenced.
func deleteByID(ctx context.Context, q queryer, query string, id int64, notFound error) error {
	result, err := q.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrStillInUse
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}

// exists reports whether query (a SELECT 1 ... WHERE x = $1) matches a row.
func exists(ctx context.Context, q queryer, query string, arg any) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, query, arg).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MapInsertError translates constraint violations raised while inserting or
// updating a row.
func MapInsertError(err error) error {
	switch {
	case isUniqueViolation(err):
		return ErrDuplicate
	case isForeignKeyViolation(err):
		return ErrReferenceNotFound
	default:
		return err
	}
}

// MapDeleteError translates constraint violations raised while deleting a row.
func MapDeleteError(err error) error {
	if isForeignKeyViolation(err) {
		return ErrStillInUse
	}
	return err
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
