package model

import (
	"time"
)

type CommentLike struct {
	UserID    uint64 `gorm:"primaryKey"`
	CommentID uint64 `gorm:"primaryKey;index:idx_comment_id"`
	CreatedAt time.Time

	User    *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Comment *Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
