package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubgrid/clubgrid-backend/internal/config"
	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, testAuthConfig())
	user := seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")

	resp, err := svc.Login(&dto.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.User.ID)

	// Refresh token is stored hashed, never raw.
	var stored models.RefreshToken
	require.NoError(t, db.First(&stored, "user_id = ?", user.ID).Error)
	assert.NotEqual(t, resp.RefreshToken, stored.TokenHash)
	assert.Len(t, stored.TokenHash, 64)
}

func TestLoginRejectsBadCredentialsAndInactive(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, testAuthConfig())
	user := seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")

	_, err := svc.Login(&dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("account_status", "rejected").Error)
	_, err = svc.Login(&dto.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, testAuthConfig())
	seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")

	login, err := svc.Login(&dto.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old token is revoked by the rotation.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db, testAuthConfig())
	seedUser(t, db, "Asha", "asha@example.com", "s3cretpass")

	login, err := svc.Login(&dto.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: login.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
