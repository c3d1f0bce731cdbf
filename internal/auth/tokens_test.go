package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m := NewTokenManager("0123456789abcdef", time.Hour)

	token, err := m.Issue(42, RoleAttendee)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAttendee, claims.Role)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenManager("0123456789abcdef", time.Hour)
	other := NewTokenManager("fedcba9876543210", time.Hour)

	token, err := issuer.Issue(1, RoleAdmin)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewTokenManager("0123456789abcdef", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.Issue(1, RoleAttendee)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	m := NewTokenManager("0123456789abcdef", time.Minute)
	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
