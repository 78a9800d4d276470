// File: internal/api/login_response.go
package api

import "time"

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string    `json:"access_token" example:"eyJhbGciOi..."`
	ExpiresAt   time.Time `json:"expires_at" example:"2025-06-01T14:04:05Z"`
}
