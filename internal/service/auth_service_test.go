package service

import (
	"testing"

	"socialhub_backend/internal/model"
	"socialhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.Auth.Register(&model.User{Username: "alice", Password: "secret123"}))

	err := f.Auth.Register(&model.User{Username: "alice", Password: "another"})
	assert.ErrorIs(t, err, util.ErrUsernameTaken)

	var count int64
	f.DB.Model(&model.User{}).Where("username = ?", "alice").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterHashesPassword(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.Auth.Register(&model.User{Username: "bob", Password: "secret123"}))

	var stored model.User
	require.NoError(t, f.DB.Where("username = ?", "bob").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.Equal(t, model.RoleUser, stored.Role)
}

func TestLoginIssuesToken(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Auth.Register(&model.User{Username: "alice", Password: "secret123"}))

	token, user, err := f.Auth.Login("alice", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, "test-secret-at-least-32-bytes-long!!")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleUser, claims.Role)

	var stored model.User
	require.NoError(t, f.DB.First(&stored, user.ID).Error)
	assert.True(t, stored.IsOnline)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Auth.Register(&model.User{Username: "alice", Password: "secret123"}))

	_, _, err := f.Auth.Login("alice", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = f.Auth.Login("nobody", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLogoutMarksOffline(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.Auth.Register(&model.User{Username: "alice", Password: "secret123"}))

	_, user, err := f.Auth.Login("alice", "secret123")
	require.NoError(t, err)

	require.NoError(t, f.Auth.Logout(user.ID))

	var stored model.User
	require.NoError(t, f.DB.First(&stored, user.ID).Error)
	assert.False(t, stored.IsOnline)
}
