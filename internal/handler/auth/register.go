package auth

import (
	"errors"
	"net/http"
	"strings"

	"classbook/internal/api"
	"classbook/internal/database"
	"classbook/internal/model"
	"classbook/internal/service"
	"classbook/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
)

// @Summary     Register a new user
// @Description 建立新帳號 (Email 會自動轉小寫)，role 省略時為 client，admin 只能透過啟動設定建立
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		role := model.Role(req.Role)
		if role == "" {
			role = model.RoleClient
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:        strings.ToLower(req.Email),
			FullName:     req.FullName,
			PasswordHash: hash,
			Role:         role,
			IsActive:     true,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      string(user.Role),
			IsActive:  user.IsActive,
			CreatedAt: user.CreatedAt,
		})
	}
}
