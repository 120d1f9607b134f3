package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, "spmb-backend")
	userID := uuid.New().String()
	dinasID := uuid.New().String()

	token, err := manager.GenerateAccessToken(userID, "dinas@disdik.go.id", "admin_dinas", dinasID, "")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "dinas@disdik.go.id", claims.Email)
	assert.Equal(t, "admin_dinas", claims.Role)
	assert.Equal(t, dinasID, claims.DinasID)
	assert.Empty(t, claims.SekolahID)
	assert.Equal(t, "spmb-backend", claims.Issuer)
	assert.Equal(t, userID, claims.Subject)
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, "spmb-backend")
	other := NewJWTManager("other-secret", time.Hour, "spmb-backend")

	token, err := manager.GenerateAccessToken(uuid.New().String(), "a@x.id", "siswa", "", "")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, "spmb-backend")

	token, err := manager.GenerateAccessToken(uuid.New().String(), "a@x.id", "siswa", "", "")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, "spmb-backend")

	_, err := manager.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
