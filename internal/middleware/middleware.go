package middleware

import (
	"errors"
	"net/http"
	"strings"

	"classbook/internal/database"
	"classbook/internal/model"
	"classbook/internal/service"
	"classbook/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var getUserByID = store.GetUserByID

func extractClaims(c echo.Context, secret string) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(parts[1], secret)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer 令牌，並以令牌 subject 向資料庫解析使用者後放進
// context。令牌內的 role 僅供參考，權限一律以資料庫目前的使用者為準，
// 角色異動因此立即生效，不必等令牌過期
func RequireAuth(db database.DB, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, secret)
			if err != nil {
				return err
			}
			user, err := getUserByID(c.Request().Context(), db, claims.UserID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to resolve user")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireRole 要求指定角色；admin 一律放行（覆寫規則，非階層）
func RequireRole(db database.DB, secret string, role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(db, secret)(func(c echo.Context) error {
			user := c.Get(ContextUserKey).(*model.User)
			if user.Role != role && user.Role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		})
	}
}
