package storage

import (
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/redis"
	"context"
	"time"
)

// TokenBlacklist 已注销令牌的签名，过期时间与令牌剩余有效期一致
type TokenBlacklist struct{}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{}
}

func (b *TokenBlacklist) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, 1, ttl)
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, signature string) (bool, error) {
	return redis.Exists(ctx, consts.TokenBlacklistKey+signature)
}
