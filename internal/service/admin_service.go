package service

import (
	"errors"
	"socialhub_backend/internal/model"
	"socialhub_backend/internal/repository"
	"socialhub_backend/internal/util"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// AdminService 管理后台：用户管理与帖子清理
type AdminService struct {
	UserRepo       *repository.UserRepository
	PostRepo       *repository.PostRepository
	SuggestionRepo *repository.SuggestionRepository
}

func NewAdminService(userRepo *repository.UserRepository, postRepo *repository.PostRepository, suggestionRepo *repository.SuggestionRepository) *AdminService {
	return &AdminService{
		UserRepo:       userRepo,
		PostRepo:       postRepo,
		SuggestionRepo: suggestionRepo,
	}
}

func (s *AdminService) ListUsers(page, limit int, search string) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.UserRepo.Search(search, limit, (page-1)*limit)
}

// BanUser 按用户名物理删除用户。帖子、评论、点赞保留为孤儿数据，
// 与旧版行为保持一致，不做级联清理。
func (s *AdminService) BanUser(username string) error {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	if user.Role == model.RoleAdmin {
		return util.ErrPermissionDenied
	}

	return s.UserRepo.HardDelete(user.ID)
}

type AdminPostEntry struct {
	ID        uint      `json:"id"`
	AuthorID  uint      `json:"authorId"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListPosts 帖子列表，正文截断为预览。ID 与预览分开返回，
// 前端不再需要拼接 "id: 预览" 标签。
func (s *AdminService) ListPosts(page, limit int) ([]AdminPostEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	posts, total, err := s.PostRepo.FindWithPagination((page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]AdminPostEntry, len(posts))
	for i, post := range posts {
		entries[i] = AdminPostEntry{
			ID:        post.ID,
			AuthorID:  post.AuthorID,
			Preview:   truncate(post.Content, 50),
			CreatedAt: post.CreatedAt,
		}
	}
	return entries, total, nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}

// DeletePost 按数字 ID 物理删除帖子
func (s *AdminService) DeletePost(postID uint) error {
	err := s.PostRepo.HardDelete(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrPostNotFound
	}
	return err
}

func (s *AdminService) ListSuggestions(page, limit int) ([]model.Suggestion, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.SuggestionRepo.FindAll(limit, (page-1)*limit)
}
