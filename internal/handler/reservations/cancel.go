// File: internal/handler/reservations/cancel.go
package reservations

import (
	"net/http"

	"reservas/internal/api"
	"reservas/internal/database"
	"reservas/internal/domain"
	"reservas/internal/notify"

	"github.com/labstack/echo/v4"
)

// CancelHandler 取消預約並標記退款
// @Summary     Cancel a reservation
// @Description 將預約狀態改為 Cancelled 並標記 refund_issued，成功後寄送取消通知
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       request body api.CancelRequest true "取消資料"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse "預約已取消"
// @Failure     404 {object} api.ErrorResponse "預約不存在"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /cancel/ [post]
func CancelHandler(db database.DB, notifier notify.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CancelRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		_, err := cancelReservation(c.Request().Context(), db, notifier, req.ReservationID)
		switch {
		case err == nil:
			return c.JSON(http.StatusOK, api.MessageResponse{Message: "Reservation cancelled with refund issued"})
		case domain.IsNotFound(err):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Reservation not found"})
		case domain.IsAlreadyCancelled(err):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Reservation already cancelled"})
		default:
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to cancel reservation"})
		}
	}
}
