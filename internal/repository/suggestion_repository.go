package repository

import (
	"socialhub_backend/internal/model"

	"gorm.io/gorm"
)

type SuggestionRepository struct {
	DB *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

func (r *SuggestionRepository) Create(s *model.Suggestion) error {
	return r.DB.Create(s).Error
}

func (r *SuggestionRepository) FindAll(limit, offset int) ([]model.Suggestion, int64, error) {
	var suggestions []model.Suggestion
	var total int64

	if err := r.DB.Model(&model.Suggestion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&suggestions).Error
	return suggestions, total, err
}
