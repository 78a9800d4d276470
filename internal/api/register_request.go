// File: internal/api/register_request.go
package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required" example:"alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=user admin" example:"user"`
}
