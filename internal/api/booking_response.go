package api

import "time"

// swagger:model api.BookingResponse
type BookingResponse struct {
	ID        int       `json:"id" example:"1"`
	UserID    int       `json:"user_id" example:"1"`
	ClassID   int       `json:"class_id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
