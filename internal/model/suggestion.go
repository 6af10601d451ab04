package model

// Suggestion 社区功能建议箱
type Suggestion struct {
	BaseModel
	Username string `gorm:"size:100;not null" json:"username"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}
