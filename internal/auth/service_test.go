package auth_test

import (
	"testing"
	"time"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := auth.NewService("", time.Hour)
		assert.Error(t, err)
	})

	t.Run("defaults expiry when not positive", func(t *testing.T) {
		svc, err := auth.NewService("secret", 0)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestPasswordHashing(t *testing.T) {
	svc, err := auth.NewService("secret", time.Hour)
	require.NoError(t, err)

	hash, err := svc.HashPassword("hunter2-but-longer")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2-but-longer", hash)

	assert.True(t, svc.CheckPassword(hash, "hunter2-but-longer"))
	assert.False(t, svc.CheckPassword(hash, "wrong-password"))
	assert.False(t, svc.CheckPassword("not-a-hash", "hunter2-but-longer"))
}

func TestJWTRoundTrip(t *testing.T) {
	svc, err := auth.NewService("secret", time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateJWT(userID, "coach@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "coach@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateJWTRejectsForeignTokens(t *testing.T) {
	issuer, err := auth.NewService("secret-one", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewService("secret-two", time.Hour)
	require.NoError(t, err)

	token, err := issuer.GenerateJWT(uuid.New(), "coach@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredTokens(t *testing.T) {
	svc, err := auth.NewService("secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.GenerateJWT(uuid.New(), "coach@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	svc, err := auth.NewService("secret", time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateJWT("not.a.token")
	assert.Error(t, err)
}
