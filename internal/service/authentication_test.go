package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"classbook/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw")
	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "pw"))
	require.Error(t, AuthenticateUser(context.Background(), u, "bad"))
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, _, err := IssueAccessToken(model.User{}, "", time.Minute)
	require.Error(t, err)

	tok, expiresAt, err := IssueAccessToken(model.User{ID: 5, Role: model.RoleInstructor}, "s", time.Minute)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, 5, claims.UserID)
	require.Equal(t, model.RoleInstructor, claims.Role)
	require.Equal(t, "5", claims.Subject)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, err := VerifyAccessToken("abc", "")
	require.Error(t, err)

	_, err = VerifyAccessToken("invalid", "s")
	require.Error(t, err)

	// alg=none 必須被拒絕
	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"foo": "bar"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone, "s")
	require.Error(t, err)

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("whatever", "s")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	tok, _, err := IssueAccessToken(model.User{ID: 3, Role: model.RoleClient}, "s", time.Minute)
	require.NoError(t, err)
	claims, err := VerifyAccessToken(tok, "s")
	require.NoError(t, err)
	require.Equal(t, 3, claims.UserID)
	require.Equal(t, model.RoleClient, claims.Role)

	// 密鑰不符
	_, err = VerifyAccessToken(tok, "other")
	require.Error(t, err)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	t.Cleanup(restoreGlobals)
	issuedAt := time.Now().Add(-2 * time.Hour)
	timeNow = func() time.Time { return issuedAt }
	tok, _, err := IssueAccessToken(model.User{ID: 8}, "s", time.Hour)
	require.NoError(t, err)

	timeNow = time.Now
	_, err = VerifyAccessToken(tok, "s")
	require.Error(t, err)
}
