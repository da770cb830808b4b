package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomenteDigitos(t *testing.T) {
	assert.Equal(t, "12345678000199", SomenteDigitos("12.345.678/0001-99"))
	assert.Equal(t, "52998224725", SomenteDigitos("529.982.247-25"))
	assert.Equal(t, "12345678901", SomenteDigitos("12345678901"))
	assert.Equal(t, "", SomenteDigitos("abc-/."))
	assert.Equal(t, "", SomenteDigitos(""))
}

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("s3nha-f0rte")
	require.NoError(t, err)
	require.NotEqual(t, "s3nha-f0rte", hash)

	assert.True(t, VerificarSenha(hash, "s3nha-f0rte"))
	assert.False(t, VerificarSenha(hash, "outra"))
}
