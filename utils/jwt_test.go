package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims TokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestDecodeTokenUnverified(t *testing.T) {
	t.Setenv("BACKEND_JWT_SECRET", "")

	signed := signToken(t, "whatever", TokenClaims{
		Role: "admin",
		Name: "Sarawut",
	})

	claims, err := DecodeToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "Sarawut", claims.Name)
}

func TestDecodeTokenVerified(t *testing.T) {
	t.Setenv("BACKEND_JWT_SECRET", "s3cret")

	signed := signToken(t, "s3cret", TokenClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := DecodeToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestDecodeTokenRejectsBadSignature(t *testing.T) {
	t.Setenv("BACKEND_JWT_SECRET", "s3cret")

	signed := signToken(t, "not-the-secret", TokenClaims{Role: "admin"})

	_, err := DecodeToken(signed)
	assert.Error(t, err)
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	t.Setenv("BACKEND_JWT_SECRET", "")

	_, err := DecodeToken("")
	assert.Error(t, err)

	_, err = DecodeToken("not.a.token")
	assert.Error(t, err)
}

func TestDecodeTokenWithoutRoleClaim(t *testing.T) {
	t.Setenv("BACKEND_JWT_SECRET", "")

	signed := signToken(t, "x", TokenClaims{Name: "no role claim"})

	claims, err := DecodeToken(signed)
	require.NoError(t, err)
	assert.Empty(t, claims.Role, "the caller decides the fallback role")
}
