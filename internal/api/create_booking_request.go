package api

// swagger:model api.CreateBookingRequest
type CreateBookingRequest struct {
	ClassID int `json:"class_id" validate:"required" example:"1"`
}
