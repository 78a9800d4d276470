// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"reservas/internal/cache"
	"reservas/internal/database"
	"reservas/internal/handler"
	"reservas/internal/handler/auth"
	"reservas/internal/handler/reservations"
	"reservas/internal/handler/trips"
	"reservas/internal/middleware"
	"reservas/internal/notify"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, notifier notify.Notifier) {
	// 健康檢查
	e.GET("/ping", handler.PingHandler(db, cch))

	// 註冊與登入
	e.POST("/register/", auth.RegisterHandler(db))
	e.POST("/login/", auth.LoginHandler(db))

	// 行程目錄，讀取公開，新增僅限 admin
	e.GET("/trips/", trips.ListTripsHandler(db, cch))
	e.POST("/trips/", trips.CreateTripHandler(db, cch), middleware.RequireAdmin)

	// 預約操作需通過認證
	e.POST("/reserve/", reservations.ReserveHandler(db, notifier), middleware.RequireAuth)
	e.POST("/cancel/", reservations.CancelHandler(db, notifier), middleware.RequireAuth)
}
