package handler

import (
	"mime/multipart"
	"strconv"
	"strings"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/consts"
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

// viewerID 当前用户，匿名为 0
func viewerID(c *gin.Context) uint64 {
	return c.GetUint64(consts.UserIDKey)
}

// parseID 解析路径中的数字 ID，失败时直接写入 400
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return 0, false
	}
	return id, true
}

// openUpload 打开 multipart 中的文件，调用方负责 close
func openUpload(fh *multipart.FileHeader) (*dto.UploadDTO, func(), error) {
	if fh.Size > consts.MaxUploadBytes {
		return nil, nil, service.ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &dto.UploadDTO{
		Reader:      f,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Filename:    fh.Filename,
	}
	return upload, func() { _ = f.Close() }, nil
}

// splitTags 支持重复字段与逗号分隔两种写法
func splitTags(raw []string) []string {
	var tags []string
	for _, r := range raw {
		for _, t := range strings.Split(r, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}
