package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/handler"
	"cjpowerhouse-backend/internal/middleware"
	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	orderRepo := repository.NewOrderRepository(db)
	hdl := handler.NewReportHandler(orderRepo)

	api := app.Group("/api/admin/reports", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Get("/sales/export", hdl.ExportSales)
}
