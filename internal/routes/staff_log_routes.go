package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/handler"
	"cjpowerhouse-backend/internal/middleware"
	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
	"cjpowerhouse-backend/internal/service"
)

func SetupStaffLogRoutes(app *fiber.App, db *gorm.DB, logger *zap.Logger) {
	logRepo := repository.NewStaffLogRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	duty := service.NewDutyService(logRepo, logger)
	hdl := handler.NewStaffLogHandler(logRepo, staffRepo, duty)

	api := app.Group("/api/admin/staff-logs", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.GetLogs)
	api.Get("/duty-status", hdl.GetDutyStatus)
	api.Get("/staff-options", hdl.GetStaffOptions)
	api.Post("/toggle-status", hdl.ToggleStaffStatus)
}
