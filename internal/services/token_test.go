package services

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret")
	userID := uuid.Must(uuid.NewV4())

	token, err := tokens.Generate(userID, "user@example.com")
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("issuer-secret")
	verifier := NewTokenService("other-secret")

	token, err := issuer.Generate(uuid.Must(uuid.NewV4()), "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService("test-secret")

	claims := jwt.MapClaims{
		"user_id": uuid.Must(uuid.NewV4()).String(),
		"email":   "user@example.com",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.Verify(expired)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MissingExpiry(t *testing.T) {
	tokens := NewTokenService("test-secret")

	claims := jwt.MapClaims{
		"user_id": uuid.Must(uuid.NewV4()).String(),
		"email":   "user@example.com",
	}
	eternal, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.Verify(eternal)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_UnsignedAlgorithm(t *testing.T) {
	tokens := NewTokenService("test-secret")

	claims := jwt.MapClaims{
		"user_id": uuid.Must(uuid.NewV4()).String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.Verify(unsigned)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	tokens := NewTokenService("test-secret")

	_, err := tokens.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
