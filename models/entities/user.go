package entities

import (
	"time"

	"gorm.io/gorm"
)

// User 用户实体
// - 使用场景: 帖子与评论的作者，报表中用于补全作者的 name/city
// - 表名: users
// - 关系: 一对多 Post (通过 Post.AuthorID)
type User struct {
	// 主键，UUID 字符串，创建时自动生成
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	// 用户名，必填
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// 邮箱，唯一
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`

	// 所在城市
	City string `gorm:"type:varchar(100)" json:"city"`

	// 创建时间，创建后不再修改 (不维护 updated_at)
	// - index: 按注册时间范围筛选用户
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`

	Posts []Post `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

func (User) TableName() string { return "users" }

// BeforeCreate 在插入前补齐主键
func (u *User) BeforeCreate(*gorm.DB) error {
	newID(&u.ID)
	return nil
}
