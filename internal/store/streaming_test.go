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

func TestUpdatePlatform(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE streaming_platforms")).
					WithArgs("Live", "https://live.example.com", "2031-04-02", int64(6)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unique violation",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE streaming_platforms")).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: ErrConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newMockStore(t)
			tc.setup(mock)

			got, err := s.UpdatePlatform(context.Background(), 6, &models.StreamingPlatform{
				Name: "Live", URL: "https://live.example.com", StreamingDate: "2031-04-02",
			})
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.ID != 6 {
					t.Fatalf("expected id 6, got %d", got.ID)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
