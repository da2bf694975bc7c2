package middleware

import (
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/security"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败、缺失或已注销则 UID 为 0
func AuthOptionalMiddleware(blacklist service.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(consts.UserIDKey, uint64(0))

		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}
		signature, _ := security.ExtractSignature(tokenString)
		if revoked, err := blacklist.IsRevoked(c.Request.Context(), signature); err != nil || revoked {
			c.Next()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}
