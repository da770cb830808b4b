package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	tok, err := GenerateAccessToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ParseAndValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestTokenAdulteradoFalha(t *testing.T) {
	tok, err := GenerateAccessToken(1, false)
	require.NoError(t, err)

	_, err = ParseAndValidate(tok + "x")
	assert.Error(t, err)

	_, err = ParseAndValidate("nem-um-jwt")
	assert.Error(t, err)
}
