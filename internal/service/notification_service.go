package service

import (
	"socialhub_backend/internal/model"
	"socialhub_backend/internal/repository"
	"socialhub_backend/pkg/logger"

	"go.uber.org/zap"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
	SettingsRepo     *repository.SettingsRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository, settingsRepo *repository.SettingsRepository) *NotificationService {
	return &NotificationService{
		NotificationRepo: notificationRepo,
		SettingsRepo:     settingsRepo,
	}
}

// Notify 给用户插入一条未读通知。用户关闭通知时静默丢弃。
// 通知失败不阻塞主流程，只记日志。
func (s *NotificationService) Notify(userID uint, typ model.NotificationType, message string) {
	settings, err := s.SettingsRepo.FindOrCreate(userID)
	if err == nil && !settings.NotificationsEnabled {
		return
	}

	n := &model.Notification{
		UserID:  userID,
		Type:    typ,
		Message: message,
	}
	if err := s.NotificationRepo.Create(n); err != nil {
		logger.Log.Error("failed to create notification", zap.Uint("userId", userID), zap.Error(err))
	}
}

func (s *NotificationService) ListUnread(userID uint) ([]model.Notification, error) {
	return s.NotificationRepo.FindUnread(userID)
}

func (s *NotificationService) CountUnread(userID uint) (int64, error) {
	return s.NotificationRepo.CountUnread(userID)
}

func (s *NotificationService) MarkRead(userID, id uint) error {
	return s.NotificationRepo.MarkRead(userID, id)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.NotificationRepo.MarkAllRead(userID)
}
