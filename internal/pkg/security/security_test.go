package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, []string{"USER", "ADMIN"})
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.Roles)
	assert.Equal(t, JWTIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1, []string{"USER"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".invalidsignature"

	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	token, err := GenerateToken(1, nil)
	require.NoError(t, err)

	old := JWTSecret
	JWTSecret = []byte("another-secret")
	defer func() { JWTSecret = old }()

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	sig, err := ExtractSignature("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "c", sig)

	_, err = ExtractSignature("a.b")
	assert.Error(t, err)

	_, err = ExtractSignature("a.b.")
	assert.Error(t, err)
}

func TestRemainingTTL(t *testing.T) {
	token, err := GenerateToken(7, nil)
	require.NoError(t, err)
	claims, err := ValidateToken(token)
	require.NoError(t, err)

	ttl := RemainingTTL(claims)
	assert.True(t, ttl > JWTExpirationTime-time.Minute)
	assert.True(t, ttl <= JWTExpirationTime)

	assert.Equal(t, JWTExpirationTime, RemainingTTL(nil))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, CheckPasswordHash("s3cret-pass", hash))
	assert.ErrorIs(t, CheckPasswordHash("wrong", hash), ErrInvalidCredentials)

	_, err = HashPassword("")
	assert.Error(t, err)
}
