package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-key", time.Hour)

	token, err := issuer.GenerateJWT(7, "Agent")
	require.NoError(t, err)

	claims, err := issuer.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Agent", claims.Role)
	assert.Equal(t, "7", claims.Subject)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenIssuer_TokensAreUnique(t *testing.T) {
	issuer := NewTokenIssuer("test-key", time.Hour)
	a, err := issuer.GenerateJWT(1, "Admin")
	require.NoError(t, err)
	b, err := issuer.GenerateJWT(1, "Admin")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("test-key", time.Hour)
	token, err := issuer.GenerateJWT(1, "Admin")
	require.NoError(t, err)

	_, err = NewTokenIssuer("other-key", time.Hour).ParseJWT(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.ParseJWT("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenIssuer("test-key", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, err := expired.GenerateJWT(1, "Admin")
	require.NoError(t, err)
	_, err = issuer.ParseJWT(old)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_NoExpiryWhenTTLZero(t *testing.T) {
	issuer := NewTokenIssuer("test-key", 0)
	token, err := issuer.GenerateJWT(3, "Armateur")
	require.NoError(t, err)
	claims, err := issuer.ParseJWT(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestObjectName(t *testing.T) {
	name := ObjectName("Photo.PNG")
	assert.True(t, len(name) > len(imagePrefix))
	assert.Equal(t, imagePrefix, name[:len(imagePrefix)])
	assert.Equal(t, ".png", name[len(name)-4:])
	assert.NotEqual(t, name, ObjectName("Photo.PNG"))
}
