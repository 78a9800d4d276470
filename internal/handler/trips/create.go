// File: internal/handler/trips/create.go
package trips

import (
	"log"
	"net/http"

	"reservas/internal/api"
	"reservas/internal/cache"
	"reservas/internal/database"
	"reservas/internal/model"
	"reservas/internal/store"

	"github.com/labstack/echo/v4"
)

var createTrip = store.CreateTrip

// CreateTripHandler 新增行程到目錄（僅限 admin）
// @Summary     Create a trip
// @Description 新增一筆行程，成功後清除行程清單快取
// @Tags        trips
// @Accept      json
// @Produce     json
// @Param       request body api.CreateTripRequest true "行程資料"
// @Success     200 {object} api.TripResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse "需要 admin 權限"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /trips/ [post]
func CreateTripHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTripRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		available := true
		if req.Available != nil {
			available = *req.Available
		}

		trip, err := createTrip(c.Request().Context(), db, &model.Trip{
			Destination: req.Destination,
			Price:       req.Price,
			Date:        req.Date,
			Available:   available,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create trip"})
		}

		// 目錄變動，讓快取下一次讀取時重建
		if err := cch.Del(c.Request().Context(), tripsCacheKey).Err(); err != nil {
			log.Printf("trips cache invalidation failed: %v", err)
		}

		return c.JSON(http.StatusOK, api.TripResponse{
			ID:          trip.ID,
			Destination: trip.Destination,
			Price:       trip.Price,
			Date:        trip.Date,
			Available:   trip.Available,
		})
	}
}
