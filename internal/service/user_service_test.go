package service

import (
	"testing"

	"socialhub_backend/internal/model"
	"socialhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	profile, err := f.User.GetProfile(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, model.RoleUser, profile.Role)

	_, err = f.User.GetProfile(999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUpdateBio(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	require.NoError(t, f.User.UpdateBio(alice.ID, "hello world"))

	profile, err := f.User.GetProfileByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "hello world", profile.Bio)
}

// 首次读取时惰性创建默认设置
func TestSettingsLazyCreated(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	var count int64
	f.DB.Model(&model.UserSettings{}).Count(&count)
	assert.Zero(t, count)

	settings, err := f.User.GetSettings(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "light", settings.Theme)
	assert.Equal(t, "en", settings.Language)
	assert.True(t, settings.NotificationsEnabled)

	f.DB.Model(&model.UserSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// 再次读取返回同一条记录
	again, err := f.User.GetSettings(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

// 部分更新只改传入的字段
func TestUpdateSettingsPartial(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	theme := "dark"
	updated, err := f.User.UpdateSettings(alice.ID, SettingsUpdate{Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, "en", updated.Language)
	assert.True(t, updated.NotificationsEnabled)

	enabled := false
	updated, err = f.User.UpdateSettings(alice.ID, SettingsUpdate{NotificationsEnabled: &enabled})
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	assert.False(t, updated.NotificationsEnabled)
}
