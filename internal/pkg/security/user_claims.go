package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 定义了 Token 中携带的身份信息
type UserClaims struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
