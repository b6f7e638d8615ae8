package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/handler"
	"cjpowerhouse-backend/internal/middleware"
	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
	"cjpowerhouse-backend/pkg/mailer"
)

func SetupRescueRoutes(app *fiber.App, db *gorm.DB, mail *mailer.Mailer, logger *zap.Logger) {
	repo := repository.NewHelpRequestRepository(db)
	hdl := handler.NewRescueHandler(repo, mail, logger)

	api := app.Group("/api/rescue", middleware.Auth)
	api.Get("/latest", hdl.GetLatest)
	api.Get("/stream", hdl.Stream)
	api.Get("/notifications", hdl.GetNotifications)
	api.Post("/notifications/read", hdl.MarkNotificationsRead)

	admin := app.Group("/api/admin/rescue", middleware.Auth, middleware.Role(model.RoleAdmin))
	admin.Get("/stats", hdl.GetStats)
	admin.Post("/dispatch", hdl.Dispatch)
}
