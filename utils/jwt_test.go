package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("user-1", "ops@acme.example", "client", "tenant-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "ops@acme.example", claims["email"])
	assert.Equal(t, "client", claims["role"])
	assert.Equal(t, "tenant-1", claims["clientId"])
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "ops@acme.example", "client", "tenant-1", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaims(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "ops@acme.example", "client", "tenant-1", time.Hour)
	require.NoError(t, err)

	_, err = ExtractClaims(token + "x")
	assert.Error(t, err)
}

func TestHashTokenIsStableAndHexEncoded(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashToken("abd"))
}
