package entities

import (
	"time"

	"gorm.io/gorm"
)

// Post 帖子实体
// - 使用场景: 所有报表的核心数据源
// - 表名: posts
// - 关系: 多对一 User (AuthorID)、多对一 Topic (TopicID)、一对多 Comment
type Post struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	// 标题，必填
	Title string `gorm:"type:varchar(255);not null" json:"title"`

	// 内容，模糊搜索的目标字段
	// - postgres 下由 gin_trgm_ops 索引支持，mysql 下由 FULLTEXT 索引支持 (见 dependencies.InitDatabase)
	Content string `gorm:"type:text;not null" json:"content"`

	// 是否已发布，草稿不计入任何报表
	// - 与 author_id 组成联合索引，服务于按作者分组统计已发布帖子
	Published bool `gorm:"not null;default:false;index:idx_posts_author_published,priority:2" json:"published"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`

	AuthorID string `gorm:"type:varchar(36);not null;index:idx_posts_author_published,priority:1" json:"author_id"`
	TopicID  string `gorm:"type:varchar(36);not null;index" json:"topic_id"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Topic    *Topic    `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (Post) TableName() string { return "posts" }

func (p *Post) BeforeCreate(*gorm.DB) error {
	newID(&p.ID)
	return nil
}
