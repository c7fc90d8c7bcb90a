package model

import (
	"time"
)

type Saved struct {
	UserID    uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"primaryKey;index:idx_saved_post_id"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Post *Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Saved) TableName() string {
	return "saved"
}
