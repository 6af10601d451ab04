package model

type Post struct {
	BaseModel
	AuthorID     uint   `gorm:"index;not null" json:"authorId"`
	Author       User   `gorm:"foreignKey:AuthorID" json:"author"`
	Content      string `gorm:"type:text;not null" json:"content"`
	VideoURL     string `gorm:"size:255" json:"videoUrl"`
	ThumbnailURL string `gorm:"size:255" json:"thumbnailUrl"`
}

func (Post) TableName() string {
	return "posts"
}

// PostLike 点赞记录。刻意不加 (user_id, post_id) 唯一索引，
// 同一用户可以重复点赞同一帖子，计数按行数累加。
type PostLike struct {
	BaseModel
	UserID uint `gorm:"index;not null" json:"userId"`
	PostID uint `gorm:"index;not null" json:"postId"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

type Comment struct {
	BaseModel
	PostID  uint   `gorm:"index;not null" json:"postId"`
	UserID  uint   `gorm:"index;not null" json:"userId"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	Content string `gorm:"type:text;not null" json:"content"`
}

func (Comment) TableName() string {
	return "comments"
}
