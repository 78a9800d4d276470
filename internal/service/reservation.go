// File: internal/service/reservation.go
package service

import (
	"context"
	"log"

	"reservas/internal/database"
	"reservas/internal/domain"
	"reservas/internal/model"
	"reservas/internal/notify"
	"reservas/internal/store"
)

var (
	getAvailableTrip   = store.GetAvailableTrip
	getTripByID        = store.GetTripByID
	createReservation  = store.CreateReservation
	getReservationByID = store.GetReservationByID
	cancelReservation  = store.CancelReservation
	getUserByID        = store.GetUserByID
)

// ReserveTrip 建立一筆預約
// 流程：卡號格式檢查 → 查詢可預約行程 → 寫入 Confirmed 預約 → 排程確認通知
// 通知在預約提交後才排入佇列，寄送失敗不影響已成立的預約
func ReserveTrip(ctx context.Context, db database.DB, notifier notify.Notifier, userID, tripID int, cardNumber string) (*model.Reservation, error) {
	if err := ValidateCardNumber(cardNumber); err != nil {
		return nil, err
	}

	trip, err := getAvailableTrip(ctx, db, tripID)
	if err != nil {
		return nil, err
	}

	reservation, err := createReservation(ctx, db, &model.Reservation{
		UserID: userID,
		TripID: tripID,
		Status: model.StatusConfirmed,
	})
	if err != nil {
		return nil, err
	}

	enqueueNotification(ctx, db, notifier, userID, trip.Destination, notify.EventConfirmed)
	return reservation, nil
}

// CancelReservation 取消一筆預約並標記退款
// 已取消的預約不能再次取消，重複呼叫回傳 domain.AlreadyCancelledError
func CancelReservation(ctx context.Context, db database.DB, notifier notify.Notifier, reservationID int) (*model.Reservation, error) {
	reservation, err := getReservationByID(ctx, db, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status == model.StatusCancelled {
		return nil, domain.AlreadyCancelledError{ReservationID: reservationID}
	}

	if err := cancelReservation(ctx, db, reservationID); err != nil {
		return nil, err
	}
	reservation.Status = model.StatusCancelled
	reservation.RefundIssued = true

	destination := ""
	if trip, err := getTripByID(ctx, db, reservation.TripID); err == nil {
		destination = trip.Destination
	} else {
		log.Printf("cancel notification: trip %d lookup failed: %v", reservation.TripID, err)
	}
	enqueueNotification(ctx, db, notifier, reservation.UserID, destination, notify.EventCancelled)
	return reservation, nil
}

// enqueueNotification 解析使用者 Email 後排入通知佇列
// 查不到使用者時僅記錄 log，狀態變更不受影響
func enqueueNotification(ctx context.Context, db database.DB, notifier notify.Notifier, userID int, destination, event string) {
	user, err := getUserByID(ctx, db, userID)
	if err != nil {
		log.Printf("notification skipped: user %d lookup failed: %v", userID, err)
		return
	}
	notifier.Submit(notify.Notification{
		Recipient:   user.Email,
		Destination: destination,
		Event:       event,
	})
}
