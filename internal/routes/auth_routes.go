package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/handler"
	"cjpowerhouse-backend/internal/middleware"
	"cjpowerhouse-backend/internal/repository"
	"cjpowerhouse-backend/internal/service"
	"cjpowerhouse-backend/pkg/redis"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) {
	staffRepo := repository.NewStaffRepository(db)
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewStaffLogRepository(db)
	duty := service.NewDutyService(logRepo, logger)
	hdl := handler.NewAuthHandler(staffRepo, userRepo, logRepo, duty)

	api := app.Group("/api/auth")

	// 10 attempts per minute per IP on the login endpoints
	loginLimit := middleware.RateLimit(rdb, 10, time.Minute)
	api.Post("/login", loginLimit, hdl.StaffLogin)
	api.Post("/customer-login", loginLimit, hdl.CustomerLogin)

	api.Get("/logout-status", middleware.Auth, hdl.LogoutStatus)
	api.Post("/logout", middleware.Auth, hdl.Logout)
}
