// File: internal/handler/trips/trips.go
package trips

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"reservas/internal/api"
	"reservas/internal/cache"
	"reservas/internal/database"
	"reservas/internal/store"

	"github.com/labstack/echo/v4"
)

// 行程清單的快取 key 與 TTL，清單變動不頻繁，短 TTL 即可
const (
	tripsCacheKey = "trips:available"
	tripsCacheTTL = 30 * time.Second
)

var listAvailableTrips = store.ListAvailableTrips

// ListTripsHandler 列出所有可預約行程
// @Summary     List available trips
// @Description 回傳所有 available = true 的行程，結果會短暫快取
// @Tags        trips
// @Produce     json
// @Success     200 {array} api.TripResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /trips/ [get]
func ListTripsHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		// 先讀快取，miss 或解析失敗都回退到資料庫
		if raw, err := cch.Get(ctx, tripsCacheKey).Result(); err == nil {
			var cached []api.TripResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return c.JSON(http.StatusOK, cached)
			}
		}

		trips, err := listAvailableTrips(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list trips"})
		}

		resp := make([]api.TripResponse, 0, len(trips))
		for _, t := range trips {
			resp = append(resp, api.TripResponse{
				ID:          t.ID,
				Destination: t.Destination,
				Price:       t.Price,
				Date:        t.Date,
				Available:   t.Available,
			})
		}

		if data, err := json.Marshal(resp); err == nil {
			if err := cch.Set(ctx, tripsCacheKey, data, tripsCacheTTL).Err(); err != nil {
				log.Printf("trips cache set failed: %v", err)
			}
		}

		return c.JSON(http.StatusOK, resp)
	}
}
