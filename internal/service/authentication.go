// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classbook/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int        `json:"user_id"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// AuthenticateUser 以明文密碼驗證使用者，登入失敗一律回相同錯誤，
// 不洩漏帳號是否存在
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid credentials")
	}
	return nil
}

// IssueAccessToken 依據使用者資訊、密鑰與 TTL 產生 JWT，回傳令牌與到期時間
func IssueAccessToken(user model.User, secret string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("signing secret not configured")
	}

	now := timeNow()
	expiresAt := now.Add(ttl)
	claims := CustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyAccessToken 驗證並解析 JWT 令牌，簽發與驗證使用同一密鑰
func VerifyAccessToken(tokenString, secret string) (*CustomClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret not configured")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
