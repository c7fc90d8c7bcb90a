package middleware

import (
	"Inkpost/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// CommonMiddleware 记录请求的 scheme://host，分页链接以此为前缀
func CommonMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme := "http"
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		host := c.GetHeader("X-Forwarded-Host")
		if host == "" {
			host = c.Request.Host
		}
		c.Set(consts.BaseURLKey, scheme+"://"+host)
		c.Next()
	}
}
