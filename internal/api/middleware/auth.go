package middleware

import (
	"context"
	"errors"
	log "log/slog"

	"Inkpost/internal/pkg/consts"
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// Authenticator 把 Authorization 头解析为用户身份
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*security.UserClaims, error)
}

const (
	msgCredentialsMissing = "Authentication credentials were not provided."
	msgTokenInvalid       = "Given token not valid for any token type"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context，未登录返回 403
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.Forbidden, msgCredentialsMissing)
			c.Abort()
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), authHeader)
		if err != nil {
			switch {
			case errors.Is(err, security.ErrTokenMissing):
				response.Fail(c, response.Forbidden, msgCredentialsMissing)
			case errors.Is(err, security.ErrTokenInvalid), errors.Is(err, security.ErrTokenRevoked):
				response.Fail(c, response.Forbidden, msgTokenInvalid)
			default:
				log.ErrorContext(c.Request.Context(), "authenticate failed", "err", err)
				response.Fail(c, response.InternalServerError, "An error occurred while authenticating")
			}
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims *security.UserClaims) {
	c.Set(consts.UserIDKey, claims.UserID)
	c.Set(consts.UsernameKey, claims.Username)
}
