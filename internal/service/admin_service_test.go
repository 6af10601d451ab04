package service

import (
	"strings"
	"testing"

	"socialhub_backend/internal/model"
	"socialhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanUserRemovesAccount(t *testing.T) {
	f := newFixture(t)
	bob := seedUser(t, f.DB, "bob")

	require.NoError(t, f.Admin.BanUser("bob"))

	// 物理删除，软删除查询也找不到
	var count int64
	f.DB.Unscoped().Model(&model.User{}).Where("id = ?", bob.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

// 封禁只删账号，帖子、评论、点赞原样保留
func TestBanUserKeepsContent(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")
	bob := seedUser(t, f.DB, "bob")
	post := seedPost(t, f.DB, bob.ID, "bob's post")
	_, err := f.Feed.AddComment(bob.ID, post.ID, "own comment")
	require.NoError(t, err)
	_, err = f.Feed.LikePost(alice.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, f.Admin.BanUser("bob"))

	var posts, comments, likes int64
	f.DB.Model(&model.Post{}).Where("author_id = ?", bob.ID).Count(&posts)
	f.DB.Model(&model.Comment{}).Where("user_id = ?", bob.ID).Count(&comments)
	f.DB.Model(&model.PostLike{}).Where("post_id = ?", post.ID).Count(&likes)
	assert.Equal(t, int64(1), posts)
	assert.Equal(t, int64(1), comments)
	assert.Equal(t, int64(1), likes)
}

func TestBanUserRefusesAdmin(t *testing.T) {
	f := newFixture(t)
	admin := seedUser(t, f.DB, "root")
	require.NoError(t, f.DB.Model(admin).Update("role", model.RoleAdmin).Error)

	err := f.Admin.BanUser("root")
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestBanUnknownUser(t *testing.T) {
	f := newFixture(t)

	err := f.Admin.BanUser("nobody")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestListPostsPreviewTruncated(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")

	long := strings.Repeat("长", 80)
	seedPost(t, f.DB, alice.ID, long)
	seedPost(t, f.DB, alice.ID, "short")

	entries, total, err := f.Admin.ListPosts(1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, entries, 2)

	// 新的在前
	assert.Equal(t, "short", entries[0].Preview)
	assert.Equal(t, strings.Repeat("长", 50)+"...", entries[1].Preview)
	assert.Equal(t, alice.ID, entries[1].AuthorID)
}

func TestAdminDeletePost(t *testing.T) {
	f := newFixture(t)
	alice := seedUser(t, f.DB, "alice")
	post := seedPost(t, f.DB, alice.ID, "to delete")

	require.NoError(t, f.Admin.DeletePost(post.ID))

	var count int64
	f.DB.Unscoped().Model(&model.Post{}).Where("id = ?", post.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	err := f.Admin.DeletePost(post.ID)
	assert.ErrorIs(t, err, util.ErrPostNotFound)
}

func TestListUsersSearch(t *testing.T) {
	f := newFixture(t)
	seedUser(t, f.DB, "alice")
	seedUser(t, f.DB, "alicia")
	seedUser(t, f.DB, "bob")

	users, total, err := f.Admin.ListUsers(1, 20, "alic")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)
}
