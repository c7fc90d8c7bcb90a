package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/consts"
	"Inkpost/internal/pkg/util"
)

// FileStore 对象存储
type FileStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

// storeImage 缩放后以 JPEG 上传，返回对象名
func storeImage(ctx context.Context, store FileStore, file *dto.UploadDTO, prefix string, maxWidth int, now time.Time) (string, error) {
	if file == nil || file.Reader == nil {
		return "", ErrParamInvalid
	}
	if file.Size > consts.MaxUploadBytes {
		return "", ErrFileTooLarge
	}
	if file.ContentType != "" && !strings.HasPrefix(file.ContentType, "image/") {
		return "", ErrFileNotSupported
	}

	img, err := util.DownscaleJPEG(io.LimitReader(file.Reader, consts.MaxUploadBytes), maxWidth)
	if err != nil {
		if errors.Is(err, util.ErrImageDecode) {
			return "", ErrFileNotSupported
		}
		return "", err
	}

	objectName := util.ObjectName(prefix, now)
	if _, err = store.Upload(ctx, objectName, img.Reader(), img.Size(), "image/jpeg"); err != nil {
		return "", err
	}
	return objectName, nil
}
