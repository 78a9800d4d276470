// File: internal/api/create_trip_request.go
package api

// swagger:model api.CreateTripRequest
type CreateTripRequest struct {
	Destination string  `json:"destination" validate:"required" example:"Paris"`
	Price       float64 `json:"price" validate:"required,gt=0" example:"1200.50"`
	Date        string  `json:"date" validate:"required" example:"2025-07-01"`
	Available   *bool   `json:"available,omitempty" example:"true"`
}
