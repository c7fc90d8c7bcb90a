package dto

import "time"

// CommentDTO 评论视图，CreatedAt 按参考时区渲染
type CommentDTO struct {
	ID           uint64    `json:"id"`
	Message      string    `json:"message"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Author       AuthorDTO `json:"author"`
	Post         uint64    `json:"post"`
	Parent       *uint64   `json:"parent"`
	Liked        bool      `json:"liked"`
	LikesCount   int64     `json:"likesCount"`
	CommentCount int64     `json:"commentCount"`
}

type CreateCommentDTO struct {
	Message string  `json:"message" binding:"required,max=250"`
	Parent  *uint64 `json:"parent"`
}
