package util

import (
	"strconv"

	"Inkpost/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// PageQuery limit/offset 分页参数
type PageQuery struct {
	Limit  int
	Offset int
}

// ParsePageQuery 从 query string 读取 limit/offset，非法值回退到默认值
func ParsePageQuery(c *gin.Context) PageQuery {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = consts.DefaultPageLimit
	}
	if limit > consts.MaxPageLimit {
		limit = consts.MaxPageLimit
	}

	offset, err := strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return PageQuery{Limit: limit, Offset: offset}
}
