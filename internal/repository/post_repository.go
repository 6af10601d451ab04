package repository

import (
	"socialhub_backend/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").First(&post, id).Error
	return &post, err
}

func (r *PostRepository) Update(post *model.Post) error {
	return r.DB.Save(post).Error
}

// FindWithPagination 按创建时间倒序返回帖子，带作者信息
func (r *PostRepository) FindWithPagination(offset, limit int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	if err := r.DB.Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// FindAllContents 取全部帖子正文，供热门话题统计用
func (r *PostRepository) FindAllContents() ([]string, error) {
	var contents []string
	err := r.DB.Model(&model.Post{}).
		Order("created_at ASC, id ASC").
		Pluck("content", &contents).Error
	return contents, err
}

func (r *PostRepository) FindByAuthor(authorID uint, limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.DB.Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

// FindByAuthors 多个作者的帖子，好友动态流用
func (r *PostRepository) FindByAuthors(authorIDs []uint, limit, offset int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	if len(authorIDs) == 0 {
		return posts, 0, nil
	}

	if err := r.DB.Model(&model.Post{}).Where("author_id IN ?", authorIDs).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("Author").
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// HardDelete 物理删除帖子行，点赞和评论不做级联清理
func (r *PostRepository) HardDelete(postID uint) error {
	res := r.DB.Unscoped().Delete(&model.Post{}, postID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostRepository) CreateLike(like *model.PostLike) error {
	return r.DB.Create(like).Error
}

func (r *PostRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
