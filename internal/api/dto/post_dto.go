package dto

import (
	"time"

	"github.com/goccy/go-json"
)

type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// PostDTO 列表中的帖子
type PostDTO struct {
	ID        uint64          `json:"id"`
	Title     string          `json:"title"`
	Subtitle  *string         `json:"subtitle"`
	Content   json.RawMessage `json:"content"`
	Thumbnail *string         `json:"thumbnail"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Author    AuthorDTO       `json:"author"`
	Tags      []TagDTO        `json:"tags"`
}

// PostDetailDTO 帖子详情，附带当前用户的交互状态
type PostDetailDTO struct {
	PostDTO
	Liked        bool  `json:"liked"`
	Saved        bool  `json:"saved"`
	LikesCount   int64 `json:"likesCount"`
	SavesCount   int64 `json:"savesCount"`
	CommentCount int64 `json:"commentCount"`
}

// CreatePostDTO JSON 方式创建/更新帖子
type CreatePostDTO struct {
	Content json.RawMessage `json:"content" binding:"required"`
	Tags    []string        `json:"tags" validate:"max=10,dive,min=1,max=50"`
}

// PostWriteDTO handler 归一化后的写入参数，JSON 与 multipart 共用
type PostWriteDTO struct {
	Content   []byte
	Tags      []string `validate:"max=10,dive,min=1,max=50"`
	Thumbnail *UploadDTO
}
