package service

import (
	"context"
	"fmt"
	"socialhub_backend/internal/repository"
	"time"

	"github.com/go-redis/redis/v8"
)

const presenceTTL = 2 * time.Minute

// PresenceService 在线状态。真相源是 Redis 的带 TTL 键（每个请求刷新），
// users.is_online 只作为 Redis 不可用时的降级标记，登录/登出时同步。
type PresenceService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	ctx      context.Context
}

func NewPresenceService(userRepo *repository.UserRepository, rdb *redis.Client) *PresenceService {
	return &PresenceService{
		UserRepo: userRepo,
		Redis:    rdb,
		ctx:      context.Background(),
	}
}

func presenceKey(userID uint) string {
	return fmt.Sprintf("social:online:%d", userID)
}

func (s *PresenceService) MarkOnline(userID uint) error {
	if s.Redis != nil {
		s.Redis.Set(s.ctx, presenceKey(userID), 1, presenceTTL)
	}
	return s.UserRepo.SetOnline(userID, true)
}

func (s *PresenceService) MarkOffline(userID uint) error {
	if s.Redis != nil {
		s.Redis.Del(s.ctx, presenceKey(userID))
	}
	return s.UserRepo.SetOnline(userID, false)
}

// Touch 每个认证请求调用，刷新 TTL 和 last_seen
func (s *PresenceService) Touch(userID uint) {
	if s.Redis != nil {
		s.Redis.Expire(s.ctx, presenceKey(userID), presenceTTL)
	}
	s.UserRepo.UpdateLastSeen(userID)
}

func (s *PresenceService) IsOnline(userID uint) bool {
	if s.Redis != nil {
		n, err := s.Redis.Exists(s.ctx, presenceKey(userID)).Result()
		if err == nil {
			return n > 0
		}
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return false
	}
	return user.IsOnline
}
