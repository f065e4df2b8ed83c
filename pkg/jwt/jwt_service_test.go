package jwt

import (
	"testing"
	"time"

	"Go-Storefront/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTServiceWithKey("test-secret", "STOREFRONT")

	token := svc.GenerateTokenUser("42", domain.RoleAuthenticated)
	require.NotEmpty(t, token)

	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", id)
	assert.Equal(t, domain.RoleAuthenticated, role)
}

func TestTokenSignedWithOtherKey(t *testing.T) {
	token := NewJWTServiceWithKey("other-secret", "STOREFRONT").GenerateTokenUser("42", domain.RoleAdmin)

	_, _, err := NewJWTServiceWithKey("test-secret", "STOREFRONT").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenFromOtherIssuer(t *testing.T) {
	token := NewJWTServiceWithKey("test-secret", "SOMEONE-ELSE").GenerateTokenUser("42", domain.RoleAdmin)

	_, _, err := NewJWTServiceWithKey("test-secret", "STOREFRONT").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredToken(t *testing.T) {
	svc := &jwtService{secretKey: "test-secret", issuer: "STOREFRONT", ttl: -time.Minute}
	token := svc.GenerateTokenUser("42", domain.RoleAuthenticated)

	_, _, err := svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
