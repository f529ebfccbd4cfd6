package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/inventory-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{ID: 42, Email: "ana@example.com", Role: models.RoleAdmin}

func TestIssueAndVerify(t *testing.T) {
	s := NewTokenService("secret", 30*24*time.Hour)

	token, err := s.Issue(testUser)
	require.NoError(t, err)

	id, ok := s.Verify(token)
	require.True(t, ok)
	assert.Equal(t, Identity{ID: 42, Email: "ana@example.com", Role: models.RoleAdmin}, id)
}

func TestVerifyRejects(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	good, err := s.Issue(testUser)
	require.NoError(t, err)

	expired := NewTokenService("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue(testUser)
	require.NoError(t, err)

	other, err := NewTokenService("other", time.Hour).Issue(testUser)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": 1, "exp": time.Now().Add(time.Hour).Unix()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1})
	forever, err := noExp.SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"malformed":      "not-a-token",
		"empty":          "",
		"expired":        old,
		"wrong key":      other,
		"alg none":       unsigned,
		"missing expiry": forever,
		"tampered":       good[:len(good)-2] + "xx",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, ok := s.Verify(token)
			assert.False(t, ok)
		})
	}
}

func TestIssueWithoutSecret(t *testing.T) {
	_, err := NewTokenService("", time.Hour).Issue(testUser)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPassword("s3cret!", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("s3cret!", "not-a-hash"))

	again, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestIDTokenVerifierNeedsClientID(t *testing.T) {
	_, err := NewIDTokenVerifier("").Verify(context.Background(), "token")
	assert.Error(t, err)
}
