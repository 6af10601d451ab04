package model

type NotificationType string

const (
	NotifyLike          NotificationType = "like"
	NotifyComment       NotificationType = "comment"
	NotifyFriendRequest NotificationType = "friend_request"
	NotifyFriendAccept  NotificationType = "friend_accept"
	NotifySystem        NotificationType = "system"
)

type Notification struct {
	BaseModel
	UserID  uint             `gorm:"index;not null" json:"userId"`
	Type    NotificationType `gorm:"size:30;index" json:"type"`
	Message string           `gorm:"size:255;not null" json:"message"`
	IsRead  bool             `gorm:"default:false;index" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
