package repository

import (
	"errors"
	"socialhub_backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// FindOrCreate 按用户取设置，不存在则写入默认值
func (r *SettingsRepository) FindOrCreate(userID uint) (*model.UserSettings, error) {
	var settings model.UserSettings
	err := r.DB.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.UserSettings{
			UserID:               userID,
			Theme:                "light",
			Language:             "en",
			NotificationsEnabled: true,
		}
		err = r.DB.Create(&settings).Error
	}
	return &settings, err
}

func (r *SettingsRepository) Update(settings *model.UserSettings) error {
	return r.DB.Save(settings).Error
}
