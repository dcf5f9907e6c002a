package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYParse(t *testing.T) {
	token, err := Generate("secreto", "user-1", "user@nextmail.com", "facturacion-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "user@nextmail.com", email)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secreto", "user-1", "user@nextmail.com", "facturacion-api", 60)
	require.NoError(t, err)

	_, _, err = Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "user-1", "user@nextmail.com", "facturacion-api", 60)
	assert.Error(t, err)

	_, _, err = Parse("", "cualquier-token")
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace ya vencido.
	token, err := Generate("secreto", "user-1", "user@nextmail.com", "facturacion-api", -1)
	require.NoError(t, err)

	_, _, err = Parse("secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenBasura(t *testing.T) {
	_, _, err := Parse("secreto", "no.es.jwt")
	assert.Error(t, err)
}
