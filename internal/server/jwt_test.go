package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie2bored/shftrr/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-for-jwt-tests",
		ExpirationHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestValidateTokenRejectsEmptyString(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := testJWTService()
	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-secret",
		ExpirationHours: 1,
	})

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidatorAdapterExposesUserID(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	getter, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
