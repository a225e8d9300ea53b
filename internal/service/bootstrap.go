// File: internal/service/bootstrap.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"classbook/internal/database"
	"classbook/internal/model"
	"classbook/internal/store"
)

var (
	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
)

// EnsureAdminUser 啟動時建立 bootstrap 管理員帳號。
// email 或 password 未設定時跳過；帳號已存在時不做任何事。
func EnsureAdminUser(ctx context.Context, db database.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	email = strings.ToLower(email)
	if _, err := getUserByEmail(ctx, db, email); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("EnsureAdminUser: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("EnsureAdminUser: %w", err)
	}

	fullName := "Admin"
	_, err = createUser(ctx, db, &model.User{
		Email:        email,
		FullName:     &fullName,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("EnsureAdminUser: %w", err)
	}
	return nil
}
