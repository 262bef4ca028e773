package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetSigningKey("test-secret")

	token, err := CreateToken("worker@pico.io")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "worker@pico.io", claims.Email)

	expiry := claims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(TokenTTL), expiry, time.Minute)
}

func TestTamperedTokenRejected(t *testing.T) {
	SetSigningKey("test-secret")

	token, err := CreateToken("worker@pico.io")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestWrongKeyRejected(t *testing.T) {
	SetSigningKey("test-secret")
	token, err := CreateToken("worker@pico.io")
	require.NoError(t, err)

	SetSigningKey("another-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	SetSigningKey("test-secret")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
