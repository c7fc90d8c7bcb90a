package model

// DefaultProfileImage 新用户的默认头像对象名
const DefaultProfileImage = "default.jpg"

type Profile struct {
	UserID uint64 `gorm:"primaryKey"`
	Image  string `gorm:"type:varchar(512);not null;default:'default.jpg'"`
	Bio    string `gorm:"type:varchar(300);not null;default:''"`
}

func (Profile) TableName() string {
	return "profiles"
}
