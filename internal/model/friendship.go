package model

import "time"

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// FriendRequest 好友申请表。(sender, receiver) 不做唯一约束，重复申请允许存在
type FriendRequest struct {
	UUIDBase
	SenderID   uint   `gorm:"index;not null" json:"senderId"`
	Sender     User   `gorm:"foreignKey:SenderID;references:ID;constraint:false" json:"sender,omitempty"`
	ReceiverID uint   `gorm:"index;not null" json:"receiverId"`
	Receiver   User   `gorm:"foreignKey:ReceiverID;references:ID;constraint:false" json:"receiver,omitempty"`
	Status     string `gorm:"size:20;default:'pending'" json:"status"`
	Message    string `gorm:"size:255" json:"message"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}

// Friendship 好友关系表，双向各存一行
type Friendship struct {
	UserID    uint      `gorm:"primaryKey" json:"userId"`
	FriendID  uint      `gorm:"primaryKey" json:"friendId"`
	Status    string    `gorm:"size:20;default:'accepted'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Friendship) TableName() string {
	return "friendships"
}
