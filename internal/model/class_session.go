// File: internal/model/class_session.go
package model

import "time"

// ClassSession 課程場次，建立後不可修改
type ClassSession struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	Date        time.Time `db:"date" json:"date"`
	StartTime   string    `db:"start_time" json:"start_time"`
	EndTime     string    `db:"end_time" json:"end_time"`
	Capacity    int       `db:"capacity" json:"capacity"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ClassSummary 場次加上目前已預約人數（COUNT 查詢，非儲存計數器）
type ClassSummary struct {
	ClassSession
	BookedCount int `db:"booked_count" json:"booked_count"`
}
