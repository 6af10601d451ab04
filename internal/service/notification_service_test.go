package service

import (
	"testing"

	"socialhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotifyCreatesUnread(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	f.Notification.Notify(alice.ID, model.NotifySystem, "welcome")

	notifications, err := f.Notification.ListUnread(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "welcome", notifications[0].Message)
	assert.False(t, notifications[0].IsRead)
}

// 用户关闭通知后静默丢弃
func TestNotifyRespectsDisabledSettings(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	settings, err := f.User.GetSettings(alice.ID)
	require.NoError(t, err)
	settings.NotificationsEnabled = false
	require.NoError(t, f.DB.Save(settings).Error)

	f.Notification.Notify(alice.ID, model.NotifySystem, "ignored")

	count, err := f.Notification.CountUnread(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkRead(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	f.Notification.Notify(alice.ID, model.NotifySystem, "one")

	notifications, err := f.Notification.ListUnread(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	require.NoError(t, f.Notification.MarkRead(alice.ID, notifications[0].ID))

	count, err := f.Notification.CountUnread(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// 不能标记别人的通知
func TestMarkReadOtherUsers(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")
	bob := seedUser(t, f.DB, "bob")

	f.Notification.Notify(alice.ID, model.NotifySystem, "for alice")

	notifications, err := f.Notification.ListUnread(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	err = f.Notification.MarkRead(bob.ID, notifications[0].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, _ := f.Notification.CountUnread(alice.ID)
	assert.Equal(t, int64(1), count)
}

func TestMarkAllRead(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	f.Notification.Notify(alice.ID, model.NotifySystem, "one")
	f.Notification.Notify(alice.ID, model.NotifyLike, "two")
	f.Notification.Notify(alice.ID, model.NotifyComment, "three")

	require.NoError(t, f.Notification.MarkAllRead(alice.ID))

	count, err := f.Notification.CountUnread(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
