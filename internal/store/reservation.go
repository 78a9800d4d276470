// File: internal/store/reservation.go
package store

import (
	"context"
	"errors"
	"fmt"

	"reservas/internal/database"
	"reservas/internal/domain"
	"reservas/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateReservation(ctx context.Context, db database.DB, r *model.Reservation) (*model.Reservation, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reservations (user_id, trip_id, status, refund_issued)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		r.UserID,
		r.TripID,
		r.Status,
		r.RefundIssued,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateReservation: %w", err)
	}
	return r, nil
}

// GetReservationByID 查不到時回傳 domain.NotFoundError
func GetReservationByID(ctx context.Context, db database.DB, reservationID int) (*model.Reservation, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, trip_id, status, refund_issued, created_at
		 FROM reservations WHERE id = $1`,
		reservationID,
	)
	r := &model.Reservation{}
	if err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.TripID,
		&r.Status,
		&r.RefundIssued,
		&r.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "reservation", Err: err}
		}
		return nil, fmt.Errorf("GetReservationByID: %w", err)
	}
	return r, nil
}

// CancelReservation 將狀態改為 Cancelled 並標記 refund_issued
// 只更新仍為 Confirmed 的列，重複取消不會改動任何資料
func CancelReservation(ctx context.Context, db database.DB, reservationID int) error {
	_, err := db.Exec(ctx,
		`UPDATE reservations
		 SET status = $1, refund_issued = TRUE
		 WHERE id = $2 AND status = $3`,
		model.StatusCancelled,
		reservationID,
		model.StatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("CancelReservation: %w", err)
	}
	return nil
}
