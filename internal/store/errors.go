package store

import "errors"

var (
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail Email 已被註冊
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrClassFull 場次已額滿
	ErrClassFull = errors.New("class is full")
)
