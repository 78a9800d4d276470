// File: internal/api/cancel_request.go
package api

// swagger:model api.CancelRequest
type CancelRequest struct {
	ReservationID int `json:"reservation_id" validate:"required" example:"3"`
}
