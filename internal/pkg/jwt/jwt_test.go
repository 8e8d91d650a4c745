//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/jwt"
)

func newService(clk clock.Clock) *jwt.Service {
	return jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour, clk)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService(clock.NewRealClock())
	userID := uuid.New()

	t.Run("access token round-trips its claims", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, user.RoleAdmin.String(), claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token carries the refresh type", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleGuest)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("garbage token is invalid", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		other := jwt.NewService("another-secret", 15*time.Minute, 24*time.Hour, clock.NewRealClock())
		token, err := other.GenerateAccessToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestTokenExpiry(t *testing.T) {
	// Issue from the past so the token is already beyond its lifetime.
	clk := clock.NewMockClock(time.Now().Add(-time.Hour))
	svc := newService(clk)

	token, err := svc.GenerateAccessToken(uuid.New(), user.RoleGuest)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}
