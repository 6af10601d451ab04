package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username  string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"size:20;default:'user'" json:"role"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	IsOnline  bool      `gorm:"default:false" json:"isOnline"`
	LastLogin time.Time `json:"lastLogin"`
	LastSeen  time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// UserSettings 个人偏好，首次读取时惰性创建
type UserSettings struct {
	BaseModel
	UserID               uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Theme                string `gorm:"size:20;default:'light'" json:"theme"`
	Language             string `gorm:"size:10;default:'en'" json:"language"`
	NotificationsEnabled bool   `gorm:"default:true" json:"notificationsEnabled"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
