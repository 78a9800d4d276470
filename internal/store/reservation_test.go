// File: internal/store/reservation_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"reservas/internal/database"
	"reservas/internal/domain"
	"reservas/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeReservationRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==6 → GetReservationByID
// 2) len(dest)==2 → CreateReservation (id, created_at)
type fakeReservationRow struct {
	scanErr error
	res     *model.Reservation
}

func (r *fakeReservationRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	res := r.res
	switch len(dest) {
	case 6:
		*dest[0].(*int) = res.ID
		*dest[1].(*int) = res.UserID
		*dest[2].(*int) = res.TripID
		*dest[3].(*string) = res.Status
		*dest[4].(*bool) = res.RefundIssued
		*dest[5].(*time.Time) = res.CreatedAt
	case 2:
		*dest[0].(*int) = res.ID
		*dest[1].(*time.Time) = res.CreatedAt
	default:
		panic("fakeReservationRow.Scan: unexpected dest count")
	}
	return nil
}

/* ---------- 完整測試 ---------- */

func TestReservationStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.Reservation{
		ID:           3,
		UserID:       1,
		TripID:       5,
		Status:       model.StatusConfirmed,
		RefundIssued: false,
		CreatedAt:    now,
	}

	/* --- CreateReservation --- */
	t.Run("CreateReservation success", func(t *testing.T) {
		r := &model.Reservation{UserID: 1, TripID: 5, Status: model.StatusConfirmed}
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				created := *r
				created.ID = 3
				created.CreatedAt = now
				return &fakeReservationRow{res: &created}
			},
		}
		got, err := CreateReservation(context.Background(), db, r)
		require.NoError(t, err)
		require.Equal(t, 3, got.ID)
		require.Equal(t, model.StatusConfirmed, got.Status)
	})

	t.Run("CreateReservation insert error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeReservationRow{scanErr: errors.New("insert")}
			},
		}
		got, err := CreateReservation(context.Background(), db, &model.Reservation{})
		require.Error(t, err)
		require.Nil(t, got)
	})

	/* --- GetReservationByID --- */
	t.Run("GetReservationByID success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeReservationRow{res: sample}
			},
		}
		got, err := GetReservationByID(context.Background(), db, 3)
		require.NoError(t, err)
		require.Equal(t, 5, got.TripID)
		require.False(t, got.RefundIssued)
	})

	t.Run("GetReservationByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeReservationRow{scanErr: pgx.ErrNoRows}
			},
		}
		got, err := GetReservationByID(context.Background(), db, 999)
		require.Error(t, err)
		require.Nil(t, got)
		require.True(t, domain.IsNotFound(err))
	})

	/* --- CancelReservation --- */
	t.Run("CancelReservation success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, CancelReservation(context.Background(), db, 3))
		require.Equal(t, model.StatusCancelled, gotArgs[0])
		require.Equal(t, 3, gotArgs[1])
		require.Equal(t, model.StatusConfirmed, gotArgs[2])
	})

	t.Run("CancelReservation exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("exec")
			},
		}
		require.Error(t, CancelReservation(context.Background(), db, 3))
	})
}
