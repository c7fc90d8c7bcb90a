package model

import "time"

type Following struct {
	FollowerID  uint64 `gorm:"primaryKey"`
	FollowingID uint64 `gorm:"primaryKey;index:idx_following_id"`
	CreatedAt   time.Time

	Follower *User `gorm:"foreignKey:FollowerID;references:ID;constraint:OnDelete:CASCADE"`
	Followed *User `gorm:"foreignKey:FollowingID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Following) TableName() string {
	return "followings"
}
