package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"socialhub_backend/internal/model"
	"socialhub_backend/internal/repository"
	"socialhub_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// UserService 处理个人资料与偏好设置
type UserService struct {
	UserRepo     *repository.UserRepository
	SettingsRepo *repository.SettingsRepository
	Storage      *StorageService
}

func NewUserService(userRepo *repository.UserRepository, settingsRepo *repository.SettingsRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		SettingsRepo: settingsRepo,
		Storage:      storage,
	}
}

type ProfileResponse struct {
	ID        uint           `json:"id"`
	Username  string         `json:"username"`
	Role      model.UserRole `json:"role"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	IsOnline  bool           `json:"isOnline"`
	LastSeen  time.Time      `json:"lastSeen"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toProfile(user *model.User) *ProfileResponse {
	return &ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
		IsOnline:  user.IsOnline,
		LastSeen:  user.LastSeen,
		CreatedAt: user.CreatedAt,
	}
}

func (s *UserService) GetProfile(userID uint) (*ProfileResponse, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return toProfile(user), nil
}

func (s *UserService) GetProfileByUsername(username string) (*ProfileResponse, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return toProfile(user), nil
}

func (s *UserService) UpdateBio(userID uint, bio string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}
	user.Bio = bio
	return s.UserRepo.Update(user)
}

// UploadAvatar 上传头像并更新资料
func (s *UserService) UploadAvatar(userID uint, file *multipart.FileHeader) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", util.ErrUserNotFound
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, []string{"image/"})
	if err != nil {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("avatars/%d%s", userID, filepath.Ext(file.Filename))
	url, err := s.Storage.Provider.Upload(context.Background(), objectName, src, file.Size, mimeType)
	if err != nil {
		return "", err
	}

	user.Avatar = url
	return url, s.UserRepo.Update(user)
}

func (s *UserService) GetSettings(userID uint) (*model.UserSettings, error) {
	return s.SettingsRepo.FindOrCreate(userID)
}

type SettingsUpdate struct {
	Theme                *string `json:"theme"`
	Language             *string `json:"language"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
}

func (s *UserService) UpdateSettings(userID uint, update SettingsUpdate) (*model.UserSettings, error) {
	settings, err := s.SettingsRepo.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if update.Theme != nil {
		settings.Theme = *update.Theme
	}
	if update.Language != nil {
		settings.Language = *update.Language
	}
	if update.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *update.NotificationsEnabled
	}

	return settings, s.SettingsRepo.Update(settings)
}
