package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"socialhub_backend/internal/model"
	"socialhub_backend/internal/repository"
	"socialhub_backend/internal/util"
	"socialhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FeedService struct {
	PostRepo    *repository.PostRepository
	CommentRepo *repository.CommentRepository
	UserRepo    *repository.UserRepository
	FriendRepo  *repository.FriendshipRepository
	Notifier    *NotificationService
	Storage     *StorageService
}

func NewFeedService(
	postRepo *repository.PostRepository,
	commentRepo *repository.CommentRepository,
	userRepo *repository.UserRepository,
	friendRepo *repository.FriendshipRepository,
	notifier *NotificationService,
	storage *StorageService,
) *FeedService {
	return &FeedService{
		PostRepo:    postRepo,
		CommentRepo: commentRepo,
		UserRepo:    userRepo,
		FriendRepo:  friendRepo,
		Notifier:    notifier,
		Storage:     storage,
	}
}

type PostResponse struct {
	ID           uint      `json:"id"`
	Author       string    `json:"author"`
	Avatar       string    `json:"avatar"`
	Content      string    `json:"content"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Likes        int64     `json:"likes"`
	CommentCount int64     `json:"commentCount"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// TrendingTopic 热门话题条目
type TrendingTopic struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CreatePost 发布帖子，视频为可选附件
func (s *FeedService) CreatePost(authorID uint, content string, video *multipart.FileHeader) (*model.Post, error) {
	post := &model.Post{
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}

	if video != nil {
		if err := s.attachVideo(post, video); err != nil {
			return nil, err
		}
	}

	return s.PostRepo.FindByID(post.ID)
}

func (s *FeedService) attachVideo(post *model.Post, video *multipart.FileHeader) error {
	if err := util.ValidateVideoExt(video.Filename); err != nil {
		return err
	}

	src, err := video.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{"video/", "application/octet-stream"})
	if err != nil {
		return util.ErrInvalidVideoType
	}
	if _, err := src.Seek(0, 0); err != nil {
		return err
	}

	// 存储路径按帖子 ID + 原始文件名
	objectName := fmt.Sprintf("posts/%d/%s", post.ID, filepath.Base(video.Filename))
	url, err := s.Storage.Provider.Upload(context.Background(), objectName, src, video.Size, mimeType)
	if err != nil {
		return err
	}
	post.VideoURL = url

	// 探测与缩略图都尽力而为，失败不影响发帖
	if local, ok := s.Storage.Provider.(*LocalStorageProvider); ok {
		if info, err := util.GetVideoInfo(local.LocalPathOf(objectName)); err == nil {
			logger.Log.Info("video attached",
				zap.Uint("postId", post.ID),
				zap.Float64("duration", info.Duration),
				zap.Int("width", info.Width),
				zap.Int("height", info.Height))
		}

		thumbName := fmt.Sprintf("posts/%d/thumb.jpg", post.ID)
		if err := util.GenerateThumbnail(local.LocalPathOf(objectName), local.LocalPathOf(thumbName), "00:00:01"); err == nil {
			post.ThumbnailURL = local.GetURL(thumbName)
		} else {
			logger.Log.Warn("thumbnail generation failed", zap.Uint("postId", post.ID), zap.Error(err))
		}
	}

	return s.PostRepo.Update(post)
}

// GetFeed 按时间倒序分页返回帖子
func (s *FeedService) GetFeed(page, limit int) ([]PostResponse, int64, error) {
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
	return s.toResponses(posts), total, nil
}

// GetFriendFeed 只看好友的帖子，好友 ID 列表走缓存
func (s *FeedService) GetFriendFeed(userID uint, page, limit int) ([]PostResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	friendIDs, err := s.FriendRepo.GetFriendIDsCached(userID)
	if err != nil {
		return nil, 0, err
	}

	posts, total, err := s.PostRepo.FindByAuthors(friendIDs, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return s.toResponses(posts), total, nil
}

func (s *FeedService) toResponses(posts []model.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		likes, _ := s.PostRepo.CountLikes(post.ID)
		comments, _ := s.CommentRepo.CountByPost(post.ID)
		responses[i] = PostResponse{
			ID:           post.ID,
			Author:       post.Author.Username,
			Avatar:       post.Author.Avatar,
			Content:      post.Content,
			VideoURL:     post.VideoURL,
			ThumbnailURL: post.ThumbnailURL,
			CreatedAt:    post.CreatedAt,
			Likes:        likes,
			CommentCount: comments,
		}
	}
	return responses
}

// LikePost 点赞。不去重，同一用户重复点赞按多次计
func (s *FeedService) LikePost(userID, postID uint) (int64, error) {
	post, err := s.PostRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrPostNotFound
		}
		return 0, err
	}

	if err := s.PostRepo.CreateLike(&model.PostLike{UserID: userID, PostID: postID}); err != nil {
		return 0, err
	}

	if post.AuthorID != userID {
		if liker, err := s.UserRepo.FindByID(userID); err == nil {
			s.Notifier.Notify(post.AuthorID, model.NotifyLike,
				fmt.Sprintf("%s 赞了你的帖子", liker.Username))
		}
	}

	return s.PostRepo.CountLikes(postID)
}

func (s *FeedService) CountLikes(postID uint) (int64, error) {
	return s.PostRepo.CountLikes(postID)
}

func (s *FeedService) AddComment(userID, postID uint, content string) (*model.Comment, error) {
	post, err := s.PostRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		if commenter, err := s.UserRepo.FindByID(userID); err == nil {
			s.Notifier.Notify(post.AuthorID, model.NotifyComment,
				fmt.Sprintf("%s 评论了你的帖子", commenter.Username))
		}
	}

	return comment, nil
}

func (s *FeedService) GetComments(postID uint) ([]CommentResponse, error) {
	comments, err := s.CommentRepo.FindByPost(postID)
	if err != nil {
		return nil, err
	}

	responses := make([]CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = CommentResponse{
			ID:        c.ID,
			Author:    c.User.Username,
			Avatar:    c.User.Avatar,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
	}
	return responses, nil
}

// TrendingTopics 统计全部帖子中的 # 话题词频，取前5。
// 相同次数按首次出现顺序排序，保证结果稳定。
func (s *FeedService) TrendingTopics() ([]TrendingTopic, error) {
	contents, err := s.PostRepo.FindAllContents()
	if err != nil {
		return nil, err
	}
	return CountTrendingTopics(contents, 5), nil
}

// CountTrendingTopics 纯函数实现，便于单测
func CountTrendingTopics(contents []string, topN int) []TrendingTopic {
	counts := make(map[string]int)
	var order []string

	for _, content := range contents {
		for _, token := range strings.Fields(content) {
			if !strings.HasPrefix(token, "#") || len(token) < 2 {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	topics := make([]TrendingTopic, 0, len(order))
	for _, tag := range order {
		topics = append(topics, TrendingTopic{Tag: tag, Count: counts[tag]})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Count > topics[j].Count
	})

	if len(topics) > topN {
		topics = topics[:topN]
	}
	return topics
}
