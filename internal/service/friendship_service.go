package service

import (
	"errors"
	"fmt"
	"socialhub_backend/internal/model"
	"socialhub_backend/internal/repository"
	"socialhub_backend/internal/util"

	"gorm.io/gorm"
)

type FriendshipService struct {
	FriendRepo *repository.FriendshipRepository
	UserRepo   *repository.UserRepository
	Notifier   *NotificationService
}

func NewFriendshipService(friendRepo *repository.FriendshipRepository, userRepo *repository.UserRepository, notifier *NotificationService) *FriendshipService {
	return &FriendshipService{
		FriendRepo: friendRepo,
		UserRepo:   userRepo,
		Notifier:   notifier,
	}
}

// SendFriendRequest 按用户名发起好友申请。目标不存在返回 ErrUserNotFound，
// 由控制器转成用户可见的错误信息。
func (s *FriendshipService) SendFriendRequest(senderID uint, targetUsername, message string) (*model.FriendRequest, error) {
	target, err := s.UserRepo.FindByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if target.ID == senderID {
		return nil, util.ErrSelfFriendRequest
	}

	isFriend, _ := s.FriendRepo.IsFriend(senderID, target.ID)
	if isFriend {
		return nil, util.ErrAlreadyFriends
	}

	// 对方已发过申请时直接走同意逻辑
	var reciprocal model.FriendRequest
	err = s.FriendRepo.DB.Where("sender_id = ? AND receiver_id = ? AND status = ?",
		target.ID, senderID, model.RequestPending).First(&reciprocal).Error
	if err == nil {
		if err := s.HandleFriendRequest(reciprocal.ID, senderID, true); err != nil {
			return nil, err
		}
		return &reciprocal, nil
	}

	req := &model.FriendRequest{
		SenderID:   senderID,
		ReceiverID: target.ID,
		Message:    message,
		Status:     model.RequestPending,
	}
	if err := s.FriendRepo.CreateRequest(req); err != nil {
		return nil, err
	}

	if sender, err := s.UserRepo.FindByID(senderID); err == nil {
		s.Notifier.Notify(target.ID, model.NotifyFriendRequest,
			fmt.Sprintf("%s 请求加你为好友", sender.Username))
	}

	return req, nil
}

func (s *FriendshipService) HandleFriendRequest(requestID string, receiverID uint, accept bool) error {
	req, err := s.FriendRepo.GetRequest(requestID)
	if err != nil {
		return util.ErrRequestNotFound
	}

	if req.ReceiverID != receiverID {
		return util.ErrPermissionDenied
	}

	if req.Status != model.RequestPending {
		return util.ErrRequestHandled
	}

	if !accept {
		return s.FriendRepo.UpdateRequestStatus(requestID, model.RequestRejected)
	}

	if err := s.FriendRepo.UpdateRequestStatus(requestID, model.RequestAccepted); err != nil {
		return err
	}

	// 处理互相加好友的冲突情况
	isFriend, _ := s.FriendRepo.IsFriend(req.SenderID, req.ReceiverID)
	if isFriend {
		return nil
	}

	// 对方的反向申请一并置为已接受
	_ = s.FriendRepo.DB.Model(&model.FriendRequest{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", req.ReceiverID, req.SenderID, model.RequestPending).
		Update("status", model.RequestAccepted).Error

	friendship := &model.Friendship{
		UserID:   req.SenderID,
		FriendID: req.ReceiverID,
		Status:   model.RequestAccepted,
	}
	if err := s.FriendRepo.CreateFriendship(friendship); err != nil {
		return err
	}

	if receiver, err := s.UserRepo.FindByID(receiverID); err == nil {
		s.Notifier.Notify(req.SenderID, model.NotifyFriendAccept,
			fmt.Sprintf("%s 接受了你的好友申请", receiver.Username))
	}
	return nil
}

func (s *FriendshipService) GetFriends(userID uint) ([]model.User, error) {
	return s.FriendRepo.GetFriends(userID)
}

func (s *FriendshipService) GetPendingRequests(userID uint) ([]model.FriendRequest, error) {
	return s.FriendRepo.GetPendingRequests(userID)
}

func (s *FriendshipService) DeleteFriend(userID, friendID uint) error {
	return s.FriendRepo.DeleteFriendship(userID, friendID)
}
