package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "founder@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "founder@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken(1, "a@b.com", "user")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	_, err = ParseToken("not-a-token")
	assert.Error(t, err)
}
