// File: internal/api/reserve_request.go
package api

// PaymentDetails 付款資料，只有卡號會被驗證格式
// swagger:model api.PaymentDetails
type PaymentDetails struct {
	CardNumber     string `json:"card_number" validate:"required" example:"1234567890123456"`
	CVV            string `json:"cvv" example:"123"`
	ExpirationDate string `json:"expiration_date" example:"12/27"`
}

// swagger:model api.ReserveRequest
type ReserveRequest struct {
	UserID  int            `json:"user_id" validate:"required" example:"1"`
	TripID  int            `json:"trip_id" validate:"required" example:"5"`
	Payment PaymentDetails `json:"payment" validate:"required"`
}
