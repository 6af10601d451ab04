package repository

import (
	"socialhub_backend/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(msg *model.DirectMessage) error {
	return r.DB.Create(msg).Error
}

// FindConversation 取两个用户之间的双向消息，按时间正序分页
func (r *MessageRepository) FindConversation(a, b string, limit, offset int) ([]model.DirectMessage, error) {
	var messages []model.DirectMessage
	err := r.DB.
		Where("(sender_name = ? AND recipient_name = ?) OR (sender_name = ? AND recipient_name = ?)", a, b, b, a).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) CountConversation(a, b string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.DirectMessage{}).
		Where("(sender_name = ? AND recipient_name = ?) OR (sender_name = ? AND recipient_name = ?)", a, b, b, a).
		Count(&count).Error
	return count, err
}
