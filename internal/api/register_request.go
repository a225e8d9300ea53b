package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string  `json:"password" validate:"required" example:"Secret123!"`
	FullName *string `json:"full_name,omitempty" example:"Alice"`
	Role     string  `json:"role,omitempty" validate:"omitempty,oneof=instructor client" example:"client"`
}
