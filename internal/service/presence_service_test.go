package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Redis 关闭时在线状态退回数据库字段
func TestPresenceFallbackToDB(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	assert.False(t, f.Presence.IsOnline(alice.ID))

	require.NoError(t, f.Presence.MarkOnline(alice.ID))
	assert.True(t, f.Presence.IsOnline(alice.ID))

	require.NoError(t, f.Presence.MarkOffline(alice.ID))
	assert.False(t, f.Presence.IsOnline(alice.ID))
}

func TestSuggestionSubmitAndList(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f.DB, "alice")

	s, err := f.Suggestion.Submit("alice", "add dark mode")
	require.NoError(t, err)
	assert.NotZero(t, s.ID)

	_, err = f.Suggestion.Submit("alice", "more emoji")
	require.NoError(t, err)

	list, total, err := f.Admin.ListSuggestions(1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].Username)
}
