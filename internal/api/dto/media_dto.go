package dto

import "io"

// UploadDTO 上传的原始文件
type UploadDTO struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

type ImageDTO struct {
	URL string `json:"url"`
}
