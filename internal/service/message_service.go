package service

import (
	"errors"
	"socialhub_backend/internal/model"
	"socialhub_backend/internal/repository"
	"socialhub_backend/internal/util"

	"gorm.io/gorm"
)

type MessageService struct {
	MessageRepo *repository.MessageRepository
	UserRepo    *repository.UserRepository
	Hub         *MessageHub
}

func NewMessageService(messageRepo *repository.MessageRepository, userRepo *repository.UserRepository, hub *MessageHub) *MessageService {
	return &MessageService{
		MessageRepo: messageRepo,
		UserRepo:    userRepo,
		Hub:         hub,
	}
}

// Send 保存私信并尝试实时推送给收件人
func (s *MessageService) Send(senderName, recipientName, content string) (*model.DirectMessage, error) {
	if _, err := s.UserRepo.FindByUsername(recipientName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	msg := &model.DirectMessage{
		SenderName:    senderName,
		RecipientName: recipientName,
		Content:       content,
	}
	if err := s.MessageRepo.Create(msg); err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.PushToUser(recipientName, WSEvent{Type: "DM", Data: msg})
	}

	return msg, nil
}

// Conversation 两人之间的消息历史，按时间正序
func (s *MessageService) Conversation(a, b string, page, limit int) ([]model.DirectMessage, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	total, err := s.MessageRepo.CountConversation(a, b)
	if err != nil {
		return nil, 0, err
	}

	messages, err := s.MessageRepo.FindConversation(a, b, limit, (page-1)*limit)
	return messages, total, err
}
