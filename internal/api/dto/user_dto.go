package dto

import "time"

type ProfileDTO struct {
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

// AuthorDTO 嵌入在帖子、评论中的作者摘要
type AuthorDTO struct {
	ID       uint64     `json:"id"`
	Username string     `json:"username"`
	Profile  ProfileDTO `json:"profile"`
}

type SignUpDTO struct {
	Username        string `json:"username" binding:"required,min=3,max=150"`
	Email           string `json:"email" binding:"required,email,max=254"`
	Password        string `json:"password" binding:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type SignInDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenDTO 登录成功返回的令牌与身份信息
type TokenDTO struct {
	Token    string `json:"token"`
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image"`
}

type UserDTO struct {
	ID        uint64     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Profile   ProfileDTO `json:"profile"`
	CreatedAt time.Time  `json:"created_at"`
}

// MeDTO 当前登录状态
type MeDTO struct {
	Authenticated bool   `json:"authenticated"`
	UserID        uint64 `json:"userId,omitempty"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email,omitempty"`
}

// UserHomeDTO 用户主页
type UserHomeDTO struct {
	ID          uint64     `json:"id"`
	Username    string     `json:"username"`
	Profile     ProfileDTO `json:"profile"`
	Followers   int64      `json:"followers"`
	Following   int64      `json:"following"`
	Posts       int64      `json:"posts"`
	IsFollowing bool       `json:"is_following"`
	IsSelf      bool       `json:"is_self"`
	CreatedAt   time.Time  `json:"created_at"`
}

type UpdateProfileDTO struct {
	Bio *string `json:"bio" validate:"omitempty,max=300"`
}

// FollowDTO 关注切换结果及最新粉丝数
type FollowDTO struct {
	Action    string `json:"action"`
	Followers int64  `json:"followers"`
}
