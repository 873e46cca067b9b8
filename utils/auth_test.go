package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed := HashPassword("admin123")
	assert.NotEqual(t, "admin123", hashed)
	assert.Len(t, hashed, 64)

	assert.True(t, VerifyPassword("admin123", hashed))
	assert.False(t, VerifyPassword("wrong", hashed))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("1", "admin", "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims["id"])
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
