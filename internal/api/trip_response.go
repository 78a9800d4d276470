// File: internal/api/trip_response.go
package api

// swagger:model api.TripResponse
type TripResponse struct {
	ID          int     `json:"id" example:"5"`
	Destination string  `json:"destination" example:"Paris"`
	Price       float64 `json:"price" example:"1200.50"`
	Date        string  `json:"date" example:"2025-07-01"`
	Available   bool    `json:"available" example:"true"`
}
