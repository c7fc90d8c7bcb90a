package model

import (
	"time"
)

// PostTitleMaxLen 标题与副标题上限
const PostTitleMaxLen = 250

type Post struct {
	ID        uint64  `gorm:"primaryKey"`
	UserID    uint64  `gorm:"not null;index:idx_post_user_id"`
	Title     string  `gorm:"type:varchar(250);not null;default:''"`
	Subtitle  *string `gorm:"type:varchar(250)"`
	Content   string  `gorm:"type:text;not null"` // 结构化文档原文 (JSON)
	Thumbnail *string `gorm:"type:varchar(512)"`  // 对象存储中的 key
	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Tags []Tag `gorm:"many2many:post_tags;joinForeignKey:PostID;joinReferences:TagID"`
}

func (Post) TableName() string {
	return "posts"
}
