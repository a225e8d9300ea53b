package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"classbook/internal/config"
	"classbook/internal/database"
	"classbook/internal/model"
	"classbook/internal/service"
	"classbook/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// helper to build echo context
func newAuthCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func restoreAuth() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
}

func TestLoginHandler(t *testing.T) {
	t.Cleanup(restoreAuth)
	cfg := &config.Config{JWTSecret: "s", AccessTokenTTL: time.Hour}
	db := &database.FakeDB{}

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newAuthCtx(e, "")
	require.NoError(t, LoginHandler(db, cfg)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newAuthCtx(e, `{"email":"a@b.c","password":"pw"}`)
	require.NoError(t, LoginHandler(db, cfg)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	e = echo.New()
	e.Validator = okValidator{}

	// 查無帳號與密碼錯誤必須回覆相同訊息
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, store.ErrNotFound
	}
	ctx, rec = newAuthCtx(e, `{"email":"a@b.c","password":"pw"}`)
	require.NoError(t, LoginHandler(db, cfg)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	notFoundBody := rec.Body.String()

	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		require.Equal(t, "a@b.c", email)
		return &model.User{ID: 1, Email: email, Role: model.RoleClient}, nil
	}
	authenticateUser = func(context.Context, model.User, string) error {
		return errors.New("mismatch")
	}
	ctx, rec = newAuthCtx(e, `{"email":"A@B.C","password":"wrong"}`)
	require.NoError(t, LoginHandler(db, cfg)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, notFoundBody, rec.Body.String())

	// issue error
	authenticateUser = func(context.Context, model.User, string) error { return nil }
	issueAccessToken = func(model.User, string, time.Duration) (string, time.Time, error) {
		return "", time.Time{}, errors.New("sign")
	}
	ctx, rec = newAuthCtx(e, `{"email":"a@b.c","password":"pw"}`)
	require.NoError(t, LoginHandler(db, cfg)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	issueAccessToken = func(u model.User, secret string, ttl time.Duration) (string, time.Time, error) {
		require.Equal(t, "s", secret)
		require.Equal(t, time.Hour, ttl)
		return "token123", time.Now().Add(ttl), nil
	}
	ctx, rec = newAuthCtx(e, `{"email":"a@b.c","password":"pw"}`)
	require.NoError(t, LoginHandler(db, cfg)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "token123")
	require.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}
