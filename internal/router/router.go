// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"classbook/internal/cache"
	"classbook/internal/config"
	"classbook/internal/database"
	"classbook/internal/handler"
	"classbook/internal/handler/auth"
	"classbook/internal/handler/bookings"
	"classbook/internal/handler/classes"
	"classbook/internal/middleware"
	"classbook/internal/model"
	"classbook/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp worker.Pool, cfg *config.Config) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, cfg))

	// 課程場次：列表公開，建立僅限 instructor（admin 覆寫）
	apiClasses := api.Group("/classes")
	apiClasses.GET("/", classes.ListClassesHandler(db, cch))
	apiClasses.POST("/", classes.CreateClassHandler(db, cch, wp),
		middleware.RequireRole(db, cfg.JWTSecret, model.RoleInstructor))

	// 預約：皆需登入
	apiBookings := api.Group("/bookings", middleware.RequireAuth(db, cfg.JWTSecret))
	apiBookings.POST("/", bookings.CreateBookingHandler(db, cch, wp))
	apiBookings.GET("/me", bookings.ListMyBookingsHandler(db))
}
