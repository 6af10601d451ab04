package service

import (
	"testing"

	"socialhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageUnknownRecipient(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f.DB, "alice")

	_, err := f.Message.Send("alice", "nobody", "hi")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestSendMessagePersists(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f.DB, "alice")
	seedUser(t, f.DB, "bob")

	msg, err := f.Message.Send("alice", "bob", "hello bob")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "alice", msg.SenderName)
	assert.Equal(t, "bob", msg.RecipientName)
}

// 会话包含双向消息，按时间正序
func TestConversationBothDirections(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f.DB, "alice")
	seedUser(t, f.DB, "bob")
	seedUser(t, f.DB, "carol")

	_, err := f.Message.Send("alice", "bob", "hi bob")
	require.NoError(t, err)
	_, err = f.Message.Send("bob", "alice", "hi alice")
	require.NoError(t, err)
	_, err = f.Message.Send("alice", "carol", "hi carol")
	require.NoError(t, err)

	messages, total, err := f.Message.Conversation("alice", "bob", 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, messages, 2)

	assert.Equal(t, "hi bob", messages[0].Content)
	assert.Equal(t, "hi alice", messages[1].Content)
}

func TestConversationEmpty(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f.DB, "alice")
	seedUser(t, f.DB, "bob")

	messages, total, err := f.Message.Conversation("alice", "bob", 1, 50)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, messages)
}
