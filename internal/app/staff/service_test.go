package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/models"
	"gigbook/internal/store"
	"gigbook/internal/validation"
)

type memStore struct {
	staff   []*models.Staff
	inUse   map[int64]bool
	deleted []int64
}

func (m *memStore) ListStaff(context.Context) ([]*models.Staff, error) { return m.staff, nil }

func (m *memStore) GetStaff(_ context.Context, id int64) (*models.Staff, error) {
	for _, s := range m.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, store.ErrStaffNotFound
}

func (m *memStore) CreateStaff(_ context.Context, s *models.Staff) (*models.Staff, error) {
	s.ID = int64(len(m.staff) + 1)
	m.staff = append(m.staff, s)
	return s, nil
}

func (m *memStore) DeleteStaff(_ context.Context, id int64) error {
	if m.inUse[id] {
		return store.ErrStillInUse
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func TestCreateTrims(t *testing.T) {
	svc := New(&memStore{})

	s, err := svc.Create(context.Background(), &models.Staff{Name: " Mo ", Role: "Tour Manager  "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ID)
	assert.Equal(t, "Mo", s.Name)
	assert.Equal(t, "Tour Manager", s.Role)
}

func TestCreateRequiresRole(t *testing.T) {
	tests := []struct {
		name   string
		member models.Staff
		fields []string
	}{
		{name: "missing role", member: models.Staff{Name: "Mo"}, fields: []string{"role"}},
		{name: "blank role", member: models.Staff{Name: "Mo", Role: "   "}, fields: []string{"role"}},
		{name: "nothing", member: models.Staff{}, fields: []string{"name", "role"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := &memStore{}
			svc := New(st)

			member := tc.member
			_, err := svc.Create(context.Background(), &member)
			var verr *validation.RequestValidationError
			require.True(t, errors.As(err, &verr))

			var got []string
			for _, f := range verr.Fields {
				got = append(got, f.Field)
			}
			assert.ElementsMatch(t, tc.fields, got)
			assert.Empty(t, st.staff)
		})
	}
}

func TestDeleteManagingStaff(t *testing.T) {
	st := &memStore{inUse: map[int64]bool{1: true}}
	svc := New(st)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrConflict)

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, []int64{2}, st.deleted)
}

func TestGetUnknownStaff(t *testing.T) {
	svc := New(&memStore{})
	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
