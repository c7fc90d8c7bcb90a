package redis

import (
	"Inkpost/internal/pkg/consts"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist 以令牌签名为 key 记录已注销的令牌
type TokenBlacklist struct {
	rdb *redis.Client
}

func NewTokenBlacklist(rdb *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{rdb: rdb}
}

func (s *TokenBlacklist) IsRevoked(ctx context.Context, signature string) (bool, error) {
	n, err := s.rdb.Exists(ctx, consts.TokenBlacklistKey+signature).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *TokenBlacklist) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	return s.rdb.Set(ctx, consts.TokenBlacklistKey+signature, 1, ttl).Err()
}
