package entities

import (
	"time"

	"gorm.io/gorm"
)

// Comment 评论实体
// - 关系: 多对一 Post (PostID)、多对一 User (AuthorID)
type Comment struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	PostID    string    `gorm:"type:varchar(36);not null;index" json:"post_id"`
	AuthorID  string    `gorm:"type:varchar(36);not null;index" json:"author_id"`

	Post   *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) BeforeCreate(*gorm.DB) error {
	newID(&c.ID)
	return nil
}
