// File: internal/handler/reservations/reserve.go
package reservations

import (
	"net/http"

	"reservas/internal/api"
	"reservas/internal/database"
	"reservas/internal/domain"
	"reservas/internal/notify"
	"reservas/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	reserveTrip       = service.ReserveTrip
	cancelReservation = service.CancelReservation
)

// ReserveHandler 建立預約
// @Summary     Reserve a trip
// @Description 驗證卡號格式後對可預約行程建立 Confirmed 預約，成功後寄送確認通知
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       request body api.ReserveRequest true "預約資料"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse "卡號格式錯誤"
// @Failure     404 {object} api.ErrorResponse "行程不存在或不可預約"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reserve/ [post]
func ReserveHandler(db database.DB, notifier notify.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ReserveRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		_, err := reserveTrip(c.Request().Context(), db, notifier, req.UserID, req.TripID, req.Payment.CardNumber)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, api.MessageResponse{Message: "Trip reserved successfully"})
		case domain.IsValidation(err):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid card number"})
		case domain.IsNotFound(err):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Trip not available"})
		default:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to reserve trip"})
		}
	}
}
