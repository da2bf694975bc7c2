package security

import (
	"Blogicum/internal/api/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	JWTSecret         = []byte("Blogicum")
	JWTIssuer         = "Blogicum"
	JWTExpirationTime = time.Hour * 24
)

// Init 使用配置覆盖默认的签名参数
func Init(cfg config.JWTConfig) {
	if cfg.Secret != "" {
		JWTSecret = []byte(cfg.Secret)
	}
	if cfg.Issuer != "" {
		JWTIssuer = cfg.Issuer
	}
	if cfg.Expiration > 0 {
		JWTExpirationTime = time.Duration(cfg.Expiration) * time.Hour
	}
}

// UserClaims 定义了我们 Token 中需要包含的业务信息
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
