package security

import (
	"context"
	"time"
)

// RevocationStore 已注销令牌的存储
type RevocationStore interface {
	IsRevoked(ctx context.Context, signature string) (bool, error)
	Revoke(ctx context.Context, signature string, ttl time.Duration) error
}

// Gateway 把请求头解析为用户身份；业务层只接触解析后的 user id
type Gateway struct {
	tokens  *TokenManager
	revoked RevocationStore
}

func NewGateway(tokens *TokenManager, revoked RevocationStore) *Gateway {
	return &Gateway{tokens: tokens, revoked: revoked}
}

// Authenticate 校验 Authorization 头并返回 Claims
func (g *Gateway) Authenticate(ctx context.Context, header string) (*UserClaims, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, err
	}
	signature, err := ExtractSignature(token)
	if err != nil {
		return nil, err
	}

	claims, err := g.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := g.revoked.IsRevoked(ctx, signature)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Revoke 注销令牌，保留到令牌自然过期为止
func (g *Gateway) Revoke(ctx context.Context, header string) error {
	token, err := BearerToken(header)
	if err != nil {
		return err
	}
	claims, err := g.tokens.ValidateToken(token)
	if err != nil {
		return err
	}
	signature, err := ExtractSignature(token)
	if err != nil {
		return err
	}

	ttl := g.tokens.TTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return g.revoked.Revoke(ctx, signature, ttl)
}

// Issue 为用户签发令牌
func (g *Gateway) Issue(userID uint64, username, email string) (string, error) {
	return g.tokens.GenerateToken(userID, username, email)
}
