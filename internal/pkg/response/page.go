package response

import (
	"net/url"
	"strconv"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/consts"
	"Inkpost/internal/pkg/util"

	"github.com/gin-gonic/gin"
)

// NewPage 依据当前请求地址生成上一页/下一页链接
func NewPage[T any](c *gin.Context, page util.PageQuery, total int64, results []T) *dto.PageDTO[T] {
	if results == nil {
		results = []T{}
	}
	p := &dto.PageDTO[T]{Count: total, Results: results}

	if int64(page.Offset+page.Limit) < total {
		next := pageURL(c, page.Limit, page.Offset+page.Limit)
		p.Next = &next
	}
	if page.Offset > 0 {
		prevOffset := page.Offset - page.Limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		prev := pageURL(c, page.Limit, prevOffset)
		p.Previous = &prev
	}
	return p
}

// pageURL 保留原有 query 参数，只替换 limit/offset；offset 为 0 时省略
func pageURL(c *gin.Context, limit, offset int) string {
	query := url.Values{}
	for k, v := range c.Request.URL.Query() {
		query[k] = v
	}
	query.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	} else {
		query.Del("offset")
	}

	return BaseURL(c) + c.Request.URL.Path + "?" + query.Encode()
}

// BaseURL 由 CommonMiddleware 写入，缺失时按请求推断
func BaseURL(c *gin.Context) string {
	if base := c.GetString(consts.BaseURLKey); base != "" {
		return base
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
