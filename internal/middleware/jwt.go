package middleware

import (
	"net/http"
	"strings"

	"YClaw/internal/utils"

	"github.com/gin-gonic/gin"
)

// 从 Header 提取 Token，格式: Authorization: Bearer xxx
func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// JWTAuth 强制鉴权：没带 Token 或 Token 无效直接 401
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := utils.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// 存入 Gin Context，后续 Handler 用 c.GetUint("userID") 读取
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalJWTAuth 可选鉴权：带了有效 Token 就解析身份，没带照样放行。
// 用于"未登录和没有申请记录表现一致"的接口 (查询本人申请)
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr != "" {
			if claims, err := utils.ParseToken(tokenStr); err == nil {
				c.Set("userID", claims.UserID)
				c.Set("email", claims.Email)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}
