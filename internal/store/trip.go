// File: internal/store/trip.go
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

// ListAvailableTrips 依 id 順序回傳所有 available = true 的行程
func ListAvailableTrips(ctx context.Context, db database.DB) ([]model.Trip, error) {
	rows, err := db.Query(ctx,
		`SELECT id, destination, price, date, available
		 FROM trips WHERE available = TRUE ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAvailableTrips: %w", err)
	}
	defer rows.Close()

	trips := []model.Trip{}
	for rows.Next() {
		var t model.Trip
		if err := rows.Scan(
			&t.ID,
			&t.Destination,
			&t.Price,
			&t.Date,
			&t.Available,
		); err != nil {
			return nil, fmt.Errorf("ListAvailableTrips: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAvailableTrips: %w", err)
	}
	return trips, nil
}

// CreateTrip 新增一筆行程到目錄
func CreateTrip(ctx context.Context, db database.DB, t *model.Trip) (*model.Trip, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO trips (destination, price, date, available)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		t.Destination,
		t.Price,
		t.Date,
		t.Available,
	)
	if err := row.Scan(&t.ID); err != nil {
		return nil, fmt.Errorf("CreateTrip: %w", err)
	}
	return t, nil
}

// GetTripByID 查詢行程，不過濾 available，取消通知需要已下架行程的目的地
func GetTripByID(ctx context.Context, db database.DB, tripID int) (*model.Trip, error) {
	row := db.QueryRow(ctx,
		`SELECT id, destination, price, date, available
		 FROM trips WHERE id = $1`,
		tripID,
	)
	t := &model.Trip{}
	if err := row.Scan(
		&t.ID,
		&t.Destination,
		&t.Price,
		&t.Date,
		&t.Available,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return nil, fmt.Errorf("GetTripByID: %w", err)
	}
	return t, nil
}

// GetAvailableTrip 查詢 id 相符且 available = true 的行程
// 查不到時回傳 domain.NotFoundError
func GetAvailableTrip(ctx context.Context, db database.DB, tripID int) (*model.Trip, error) {
	row := db.QueryRow(ctx,
		`SELECT id, destination, price, date, available
		 FROM trips WHERE id = $1 AND available = TRUE`,
		tripID,
	)
	t := &model.Trip{}
	if err := row.Scan(
		&t.ID,
		&t.Destination,
		&t.Price,
		&t.Date,
		&t.Available,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return nil, fmt.Errorf("GetAvailableTrip: %w", err)
	}
	return t, nil
}
