package auth

import (
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims *service.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	actorID := uuid.New()
	restaurantID := uuid.New()
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), &service.Claims{
		ActorID:      actorID,
		RestaurantID: &restaurantID,
		Roles:        []string{"staff"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, actorID, claims.ActorID)
	require.NotNil(t, claims.RestaurantID)
	assert.Equal(t, restaurantID, *claims.RestaurantID)
	assert.Equal(t, []string{"staff"}, claims.Roles)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	valid := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "clearly-not-a-jwt-token-format"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), &service.Claims{RegisteredClaims: valid})},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), &service.Claims{RegisteredClaims: valid})},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), &service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
		})},
		{"no expiry", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), &service.Claims{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
