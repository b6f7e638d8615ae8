package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/handler"
	"cjpowerhouse-backend/internal/middleware"
	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
)

func SetupPayRoutes(app *fiber.App, db *gorm.DB) {
	logRepo := repository.NewStaffLogRepository(db)
	hdl := handler.NewPayHandler(logRepo)

	api := app.Group("/api/admin/pay", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Get("/data", hdl.GetPayData)
	api.Get("/compute", hdl.ComputePay)
}
