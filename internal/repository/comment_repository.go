package repository

import (
	"socialhub_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByPost(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
