package service

import (
	"testing"

	"socialhub_backend/internal/model"
	"socialhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeedNewestFirst(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	seedPost(t, f.DB, alice.ID, "first")
	seedPost(t, f.DB, alice.ID, "second")
	seedPost(t, f.DB, alice.ID, "third")

	posts, total, err := f.Feed.GetFeed(1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, posts, 3)

	assert.Equal(t, "third", posts[0].Content)
	assert.Equal(t, "second", posts[1].Content)
	assert.Equal(t, "first", posts[2].Content)
	assert.Equal(t, "alice", posts[0].Author)
}

func TestGetFeedPagination(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	for i := 0; i < 5; i++ {
		seedPost(t, f.DB, alice.ID, "post")
	}

	page1, total, err := f.Feed.GetFeed(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 2)

	page3, _, err := f.Feed.GetFeed(3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

// 同一用户对同一帖子重复点赞，计数按次累加
func TestLikePostCountsDuplicates(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")
	bob := seedUser(t, f.DB, "bob")
	post := seedPost(t, f.DB, alice.ID, "hello")

	count, err := f.Feed.LikePost(bob.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = f.Feed.LikePost(bob.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestLikePostNotifiesAuthor(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")
	bob := seedUser(t, f.DB, "bob")
	post := seedPost(t, f.DB, alice.ID, "hello")

	_, err := f.Feed.LikePost(bob.ID, post.ID)
	require.NoError(t, err)

	notifications, err := f.Notification.ListUnread(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotifyLike, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "bob")
}

// 给自己的帖子点赞不产生通知
func TestLikeOwnPostNoNotification(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")
	post := seedPost(t, f.DB, alice.ID, "hello")

	_, err := f.Feed.LikePost(alice.ID, post.ID)
	require.NoError(t, err)

	count, err := f.Notification.CountUnread(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestLikeMissingPost(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	_, err := f.Feed.LikePost(alice.ID, 999)
	assert.ErrorIs(t, err, util.ErrPostNotFound)
}

func TestAddCommentAndList(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")
	bob := seedUser(t, f.DB, "bob")
	post := seedPost(t, f.DB, alice.ID, "hello")

	_, err := f.Feed.AddComment(bob.ID, post.ID, "nice")
	require.NoError(t, err)
	_, err = f.Feed.AddComment(alice.ID, post.ID, "thanks")
	require.NoError(t, err)

	comments, err := f.Feed.GetComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// 评论按时间正序
	assert.Equal(t, "nice", comments[0].Content)
	assert.Equal(t, "bob", comments[0].Author)
	assert.Equal(t, "thanks", comments[1].Content)

	notifications, err := f.Notification.ListUnread(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotifyComment, notifications[0].Type)
}

func TestCountTrendingTopics(t *testing.T) {
	contents := []string{
		"check out #golang today",
		"#golang is fun, also #gin",
		"no tags here",
		"#gin #sqlite",
		"# not a tag",
	}

	topics := CountTrendingTopics(contents, 5)
	require.Len(t, topics, 3)

	assert.Equal(t, TrendingTopic{Tag: "#golang", Count: 2}, topics[0])
	assert.Equal(t, TrendingTopic{Tag: "#gin", Count: 2}, topics[1])
	assert.Equal(t, TrendingTopic{Tag: "#sqlite", Count: 1}, topics[2])
}

// 同一帖子内重复出现的话题按出现次数累计
func TestCountTrendingTopicsRepeatedInOnePost(t *testing.T) {
	topics := CountTrendingTopics([]string{"hello #foo #foo", "#bar text"}, 5)
	require.Len(t, topics, 2)
	assert.Equal(t, TrendingTopic{Tag: "#foo", Count: 2}, topics[0])
	assert.Equal(t, TrendingTopic{Tag: "#bar", Count: 1}, topics[1])
}

func TestCountTrendingTopicsTopN(t *testing.T) {
	contents := []string{"#a #b #c #d #e #f", "#a"}

	topics := CountTrendingTopics(contents, 5)
	require.Len(t, topics, 5)
	assert.Equal(t, "#a", topics[0].Tag)
	assert.Equal(t, 2, topics[0].Count)
}

// 好友动态流只包含好友的帖子
func TestGetFriendFeed(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")
	bob := seedUser(t, f.DB, "bob")
	carol := seedUser(t, f.DB, "carol")

	req, err := f.Friendship.SendFriendRequest(alice.ID, "bob", "")
	require.NoError(t, err)
	require.NoError(t, f.Friendship.HandleFriendRequest(req.ID, bob.ID, true))

	seedPost(t, f.DB, bob.ID, "from bob")
	seedPost(t, f.DB, carol.ID, "from carol")
	seedPost(t, f.DB, alice.ID, "from alice")

	posts, total, err := f.Feed.GetFriendFeed(alice.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)
	assert.Equal(t, "from bob", posts[0].Content)
}

func TestGetFriendFeedNoFriends(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")
	seedPost(t, f.DB, alice.ID, "own post")

	posts, total, err := f.Feed.GetFriendFeed(alice.ID, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, posts)
}

func TestTrendingTopicsEmptyFeed(t *testing.T) {
	f := newFixture(t)

	topics, err := f.Feed.TrendingTopics()
	require.NoError(t, err)
	assert.Empty(t, topics)
}
