package entities

import "gorm.io/gorm"

// Topic 话题实体，仅被 Post 引用
type Topic struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Topic) TableName() string { return "topics" }

func (t *Topic) BeforeCreate(*gorm.DB) error {
	newID(&t.ID)
	return nil
}
