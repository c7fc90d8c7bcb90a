package model

import (
	"time"
)

type Like struct {
	UserID    uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"primaryKey;index:idx_like_post_id"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Post *Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string {
	return "likes"
}
