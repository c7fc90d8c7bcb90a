package middleware

import (
	"Inkpost/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败或缺失则 UID 为 0
func AuthOptionalMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(consts.UserIDKey, uint64(0))
			c.Next()
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), authHeader)
		if err != nil {
			c.Set(consts.UserIDKey, uint64(0))
		} else {
			setIdentity(c, claims)
		}

		c.Next()
	}
}
