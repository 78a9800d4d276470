// File: internal/model/reservation.go
package model

import "time"

// 預約狀態，單向 Confirmed → Cancelled
const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

type Reservation struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	TripID       int       `db:"trip_id" json:"trip_id"`
	Status       string    `db:"status" json:"status"`
	RefundIssued bool      `db:"refund_issued" json:"refund_issued"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
