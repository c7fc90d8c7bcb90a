package util

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 10, 0},
		{"limit=5&offset=20", 5, 20},
		{"limit=1000", 100, 0},
		{"limit=-1&offset=-3", 10, 0},
		{"limit=abc&offset=x", 10, 0},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/posts?"+tt.query, nil)

		p := ParsePageQuery(c)
		assert.Equal(t, tt.wantLimit, p.Limit, tt.query)
		assert.Equal(t, tt.wantOffset, p.Offset, tt.query)
	}
}

func TestDownscaleJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 150))
	for x := 0; x < 300; x++ {
		for y := 0; y < 150; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	out, err := DownscaleJPEG(bytes.NewReader(buf.Bytes()), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Width)
	assert.Equal(t, 50, out.Height)
	assert.Equal(t, int64(len(out.Data)), out.Size())
	// JPEG SOI
	assert.Equal(t, []byte{0xFF, 0xD8}, out.Data[:2])

	small, err := DownscaleJPEG(bytes.NewReader(buf.Bytes()), 1200)
	require.NoError(t, err)
	assert.Equal(t, 300, small.Width)

	_, err = DownscaleJPEG(strings.NewReader("not an image"), 100)
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestObjectName(t *testing.T) {
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	name := ObjectName("uploads", now)
	assert.True(t, strings.HasPrefix(name, "uploads/2024/03/09/"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotEqual(t, name, ObjectName("uploads", now))
}

func TestValidateDTO(t *testing.T) {
	type payload struct {
		Name string `validate:"required,max=3"`
	}
	assert.NoError(t, ValidateDTO(&payload{Name: "ab"}))
	err := ValidateDTO(&payload{Name: "abcd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name")
}
