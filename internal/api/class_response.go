package api

import "time"

// swagger:model api.ClassResponse
type ClassResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title" example:"Yoga 9am"`
	Description *string   `json:"description,omitempty" example:"Morning flow"`
	Date        string    `json:"date" example:"2025-06-01"`
	StartTime   string    `json:"start_time" example:"09:00"`
	EndTime     string    `json:"end_time" example:"10:00"`
	Capacity    int       `json:"capacity" example:"10"`
	BookedCount int       `json:"booked_count" example:"3"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
