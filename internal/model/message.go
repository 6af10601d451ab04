package model

// DirectMessage 私信记录。历史原因：收发双方按用户名记录而不是用户 ID
type DirectMessage struct {
	UUIDBase
	SenderName    string `gorm:"size:100;index:idx_dm_pair;not null" json:"senderName"`
	RecipientName string `gorm:"size:100;index:idx_dm_pair;not null" json:"recipientName"`
	Content       string `gorm:"type:text;not null" json:"content"`
}

func (DirectMessage) TableName() string {
	return "direct_messages"
}
