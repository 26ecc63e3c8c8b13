package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("54321")
	require.NoError(t, err)
	assert.NotEqual(t, "54321", hash)

	assert.True(t, CheckPassword(hash, "54321"))
	assert.False(t, CheckPassword(hash, "12345"))
	assert.False(t, CheckPassword("", "54321"))
}

func TestNewSlug(t *testing.T) {
	a, err := NewSlug()
	require.NoError(t, err)
	b, err := NewSlug()
	require.NoError(t, err)

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(RoleAdmin)
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = VerifyToken(token + "x")
	assert.Error(t, err)
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(RoleAdmin)
	assert.Error(t, err)
}
