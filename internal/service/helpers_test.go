package service

import (
	"testing"
	"time"

	"socialhub_backend/internal/config"
	"socialhub_backend/internal/model"
	"socialhub_backend/internal/repository"
	"socialhub_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserSettings{},
		&model.Post{},
		&model.PostLike{},
		&model.Comment{},
		&model.FriendRequest{},
		&model.Friendship{},
		&model.Notification{},
		&model.DirectMessage{},
		&model.Suggestion{},
	))
	return db
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Port: "8080", Mode: "debug"},
		JWT: config.JWTConfig{
			Secret:     "test-secret-at-least-32-bytes-long!!",
			ExpireTime: time.Hour,
		},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{Username: username, Password: string(hash), Role: model.RoleUser}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint, content string) *model.Post {
	t.Helper()
	post := &model.Post{AuthorID: authorID, Content: content}
	require.NoError(t, db.Create(post).Error)
	return post
}

// 组装一套共用同一数据库的服务，Redis 置空走纯数据库路径
type fixture struct {
	DB           *gorm.DB
	Auth         *AuthService
	Feed         *FeedService
	Friendship   *FriendshipService
	Notification *NotificationService
	Message      *MessageService
	Admin        *AdminService
	User         *UserService
	Presence     *PresenceService
	Suggestion   *SuggestionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig(t)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	friendRepo := repository.NewFriendshipRepository(db, nil)
	notificationRepo := repository.NewNotificationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)

	storage := NewStorageService(cfg)
	presence := NewPresenceService(userRepo, nil)
	notifier := NewNotificationService(notificationRepo, settingsRepo)

	return &fixture{
		DB:           db,
		Auth:         NewAuthService(userRepo, presence, cfg),
		Feed:         NewFeedService(postRepo, commentRepo, userRepo, friendRepo, notifier, storage),
		Friendship:   NewFriendshipService(friendRepo, userRepo, notifier),
		Notification: notifier,
		Message:      NewMessageService(messageRepo, userRepo, NewMessageHub()),
		Admin:        NewAdminService(userRepo, postRepo, suggestionRepo),
		User:         NewUserService(userRepo, settingsRepo, storage),
		Presence:     presence,
		Suggestion:   NewSuggestionService(suggestionRepo),
	}
}
