package database

import (
	"log"
	"os"
	"path/filepath"
	"socialhub_backend/internal/config"
	"socialhub_backend/internal/model"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dir := filepath.Dir(cfg.Database.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	logLevel := logger.Info
	if cfg.Server.Mode == "release" {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	// SQLite 单写者，限制连接数避免 database is locked
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	log.Println("Database connection established")

	// release 模式默认不自动迁移，需通过 -migrate 显式触发
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}

// Migrate 启动时的显式建表步骤，替代按需建表
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
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
	)
	if err != nil {
		return err
	}

	return seedAdmin(db)
}

// 默认管理员账号，仅在 users 表为空时创建
func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username: "admin",
		Password: string(hashed),
		Role:     model.RoleAdmin,
		Bio:      "SocialHub administrator",
	}
	return db.Create(admin).Error
}
