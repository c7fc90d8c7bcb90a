package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_username"`
	Email     string    `gorm:"type:varchar(254);not null;default:''"`
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile Profile `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
