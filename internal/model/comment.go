package model

import (
	"time"
)

// CommentMessageMaxLen 评论正文上限
const CommentMessageMaxLen = 250

// Comment 评论；ParentID 为空表示直接评论帖子 (根评论)
type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_parent,priority:1"`
	UserID    uint64    `gorm:"not null;index:idx_comment_user_id"`
	ParentID  *uint64   `gorm:"index:idx_post_parent,priority:2;index:idx_parent_id"`
	Message   string    `gorm:"type:varchar(250);not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	User   *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Post   *Post    `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Parent *Comment `gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsRoot 是否为根评论
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}
