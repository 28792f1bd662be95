package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-token-tests"

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 1)
	userID := uuid.New()

	token, err := issuer.IssueToken(userID, "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := issuer.VerifyToken(token)
	require.NotNil(t, claims)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestTokenIssuer_VerifyMalformed(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 1)

	assert.Nil(t, issuer.VerifyToken(""))
	assert.Nil(t, issuer.VerifyToken("not-a-token"))
	assert.Nil(t, issuer.VerifyToken("aaa.bbb.ccc"))
}

func TestTokenIssuer_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 1)
	other := NewTokenIssuer("a-completely-different-secret", 1)

	token, err := other.IssueToken(uuid.New(), "jane@example.com")
	require.NoError(t, err)

	assert.Nil(t, issuer.VerifyToken(token))
}

func TestTokenIssuer_VerifyExpired(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 1)

	// sign an already-expired token with the same secret
	claims := Claims{
		UserID: uuid.New().String(),
		Email:  "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.Nil(t, issuer.VerifyToken(expired))
}

func TestTokenIssuer_RejectsUnsignedAlg(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 1)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: uuid.New().String(),
		Email:  "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Nil(t, issuer.VerifyToken(unsigned))
}
