package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const jpegQuality = 85

var ErrImageDecode = errors.New("unsupported image")

// ProcessedImage 已缩放并重新编码为 JPEG 的图片
type ProcessedImage struct {
	Data   []byte
	Width  int
	Height int
}

func (p *ProcessedImage) Reader() io.Reader {
	return bytes.NewReader(p.Data)
}

func (p *ProcessedImage) Size() int64 {
	return int64(len(p.Data))
}

// DownscaleJPEG 解码图片，按 EXIF 方向校正后等比缩放到 maxWidth 以内，输出 JPEG
func DownscaleJPEG(r io.Reader, maxWidth int) (*ProcessedImage, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}

	b := img.Bounds()
	return &ProcessedImage{Data: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

// ObjectName 生成对象存储路径 <prefix>/2006/01/02/<uuid>.jpg
func ObjectName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%s.jpg", prefix, now.Format("2006/01/02"), uuid.NewString())
}
