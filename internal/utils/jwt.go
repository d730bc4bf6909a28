package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 默认值只用于本地开发和单测，main 启动时用配置覆盖
var (
	jwtSecret = []byte("yclaw_dev_secret_do_not_use_in_prod")
	tokenTTL  = 72 * time.Hour
)

// InitJWT 注入配置中的签名密钥和有效期
func InitJWT(secret string, ttlHours int) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if ttlHours > 0 {
		tokenTTL = time.Duration(ttlHours) * time.Hour
	}
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken 签发 Token
// 用于：登录 / 注册 / 游客模式成功后
func GenerateToken(userID uint, email, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "yclaw",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken 校验并解析 Token，过期或签名不对都返回错误
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// 防止算法替换攻击，只接受 HMAC
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
