package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAccessToken("sub-1", "alice@example.com", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, expiresAt)

	identity, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", identity.Subject)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "Alice", identity.Name)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("another-secret", "1h")
		token, _, err := other.GenerateAccessToken("sub-1", "alice@example.com", "")
		require.NoError(t, err)

		_, err = svc.VerifyToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTService(testSecret, "-1h")
		token, _, err := expired.GenerateAccessToken("sub-1", "alice@example.com", "")
		require.NoError(t, err)

		_, err = svc.VerifyToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.VerifyToken(context.Background(), "not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("missing email", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("sub-1", "", "")
		require.NoError(t, err)

		_, err = svc.VerifyToken(context.Background(), token)
		assert.ErrorIs(t, err, auth.ErrIdentityNoEmail)
	})

	t.Run("bad expiration setting", func(t *testing.T) {
		_, _, err := NewJWTService(testSecret, "soon").GenerateAccessToken("sub-1", "a@example.com", "")
		assert.Error(t, err)
	})
}
