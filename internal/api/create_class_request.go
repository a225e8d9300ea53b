package api

// swagger:model api.CreateClassRequest
type CreateClassRequest struct {
	Title       string  `json:"title" validate:"required" example:"Yoga 9am"`
	Description *string `json:"description,omitempty" example:"Morning flow"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02" example:"2025-06-01"`
	StartTime   string  `json:"start_time" validate:"required,datetime=15:04" example:"09:00"`
	EndTime     string  `json:"end_time" validate:"required,datetime=15:04" example:"10:00"`
	// Capacity 省略時預設 10，依既有行為不檢查正值
	Capacity *int `json:"capacity,omitempty" example:"10"`
}
