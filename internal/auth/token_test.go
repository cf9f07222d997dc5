package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThellaPrasanthi/complain-system/internal/domain"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 6*time.Hour)

	token, expiresAt, err := tm.GenerateToken("admin", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(6*time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	token, _, err := tm.GenerateToken("user", domain.RoleUser)
	require.NoError(t, err)

	other := NewTokenManager("different-secret", time.Hour)
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	claims := &Claims{
		Username: "user",
		Role:     domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.ParseToken(expired)
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	_, err := tm.ParseToken("not-a-jwt")
	assert.Error(t, err)
}

func TestParseTokenRejectsUnexpectedMethod(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "admin", Role: domain.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.ParseToken(unsigned)
	assert.Error(t, err)
}
