package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/kafka"
	"Inkpost/internal/pkg/security"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = data
	return objectName, nil
}

func (f *fakeStore) Delete(_ context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectName)
	f.deleted = append(f.deleted, objectName)
	return nil
}

func (f *fakeStore) PublicURL(objectName string) string {
	return "http://files.test/" + objectName
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*kafka.Event
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, e *kafka.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func (f *fakePublisher) Events() []*kafka.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*kafka.Event(nil), f.events...)
}

type fakeTokens struct {
	issued  []uint64
	revoked []string
}

func (f *fakeTokens) Issue(userID uint64, _, _ string) (string, error) {
	f.issued = append(f.issued, userID)
	return "token-for-user", nil
}

func (f *fakeTokens) Revoke(_ context.Context, header string) error {
	if header == "" {
		return security.ErrTokenMissing
	}
	f.revoked = append(f.revoked, header)
	return nil
}

var errBoom = errors.New("boom")

// pngUpload 生成一张指定尺寸的 PNG
func pngUpload(t *testing.T, w, h int) *dto.UploadDTO {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &dto.UploadDTO{
		Reader:      bytes.NewReader(buf.Bytes()),
		Size:        int64(buf.Len()),
		ContentType: "image/png",
		Filename:    "cover.png",
	}
}
